package main

import (
	"github.com/gin-gonic/gin"
	"referral-hub.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	achievementHandler *handlers.AchievementHandler
	referralHandler    *handlers.ReferralHandler
	statsHandler       *handlers.StatsHandler
	chatHandler        *handlers.ChatHandler
	demoHandler        *handlers.DemoHandler
	authMiddleware     gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Achievement routes (protected)
		achievements := v1.Group("/achievements")
		achievements.Use(d.authMiddleware)
		{
			achievements.GET("", d.achievementHandler.List)
		}

		// Referral link routes (protected)
		referrals := v1.Group("/referrals")
		referrals.Use(d.authMiddleware)
		{
			referrals.POST("", d.referralHandler.CreateLink)
			referrals.GET("", d.referralHandler.ListLinks)
			referrals.GET("/analytics", d.referralHandler.Analytics)
		}

		// Click tracking (public, hit from the referral landing page)
		v1.POST("/track-click/:code", d.referralHandler.TrackClick)

		// Leaderboard (public)
		v1.GET("/leaderboard", d.statsHandler.Leaderboard)

		// Chat assistant (protected)
		v1.POST("/chat", d.authMiddleware, d.chatHandler.Chat)

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware)
		{
			admin.GET("/stats", d.statsHandler.AdminStats)
			admin.GET("/users", d.statsHandler.ListUsers)
		}

		// Demo seed (public, development helper)
		v1.POST("/demo/seed", d.demoHandler.Seed)
	}
}
