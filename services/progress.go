package services

import "math"

// TotalKebutuhan menjumlahkan seluruh komponen biaya sebuah target.
// Komponen yang tidak diisi dihitung nol.
func TotalKebutuhan(ticket, food, transport, others float64) float64 {
	return ticket + food + transport + others
}

// PersentaseProgres menghitung persentase total setoran terhadap total
// kebutuhan, dibulatkan ke dua angka desimal. Total kebutuhan nol
// menghasilkan 0.
func PersentaseProgres(totalSetoran, totalKebutuhan float64) float64 {
	if totalKebutuhan <= 0 {
		return 0
	}
	return math.Round(totalSetoran/totalKebutuhan*10000) / 100
}

// TabunganTercapai melaporkan apakah total setoran sudah memenuhi total
// kebutuhan. Perbandingan memakai >= secara literal, sehingga target dengan
// kebutuhan nol tercapai pada setoran pertamanya.
func TabunganTercapai(totalSetoran, totalKebutuhan float64) bool {
	return totalSetoran >= totalKebutuhan
}
