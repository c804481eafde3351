package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the auth and todo routes on api.
// requireAuth guards every route that needs a signed-in user.
func RegisterRoutes(api gin.IRouter, authHandler *AuthHandler, todoHandler *TodoHandler, requireAuth gin.HandlerFunc) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
	}

	todos := api.Group("/todos")
	todos.Use(requireAuth)
	{
		todos.GET("", todoHandler.ListTodos)
		todos.GET("/stats", todoHandler.GetStats)
		todos.GET("/:id", todoHandler.GetTodo)
		todos.POST("", todoHandler.CreateTodo)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}
}
