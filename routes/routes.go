package routes

import (
	"backend-tabungan/controllers"
	"backend-tabungan/middleware"
	"backend-tabungan/models"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mengatur semua rute utama aplikasi
func SetupRoutes(r *gin.Engine) {

	// Rute publik
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)

	// Rute untuk semua user terautentikasi
	auth := r.Group("/", middleware.JWTAuthMiddleware())
	{
		auth.POST("/logout", controllers.Logout)
		auth.GET("/me", controllers.Me)
		auth.GET("/recommendations", controllers.ListRecommendations)
		auth.GET("/recommendations/:id", controllers.ShowRecommendation)
	}

	// Rute manajemen katalog rekomendasi, khusus admin
	admin := r.Group("/recommendations", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("", controllers.CreateRecommendation)
		admin.PUT("/:id", controllers.UpdateRecommendation)
		admin.DELETE("/:id", controllers.DeleteRecommendation)
	}

	// Rute target tabungan dan setoran, khusus saver
	saver := r.Group("/", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleSaver))
	{
		saver.GET("/targets", controllers.ListTargets)
		saver.POST("/targets", controllers.CreateTarget)
		saver.GET("/targets/riwayatTabungan", controllers.RiwayatTabungan)
		saver.PUT("/targets/:id", controllers.UpdateTarget)
		saver.DELETE("/targets/:id", controllers.DeleteTarget)
		saver.GET("/targets/:id/progres", controllers.ShowProgres)

		saver.POST("/progres", controllers.CreateProgres)
	}
}
