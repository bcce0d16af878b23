// Package router assembles the Gin engine and its route groups.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	analyticshandler "task_backend/internal/feature/analytics/transport/handler"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	platformhandler "task_backend/internal/platform/http/handler"
	jwtmw "task_backend/internal/platform/jwt"
	"task_backend/internal/shared/ratelimiter"
)

// RequestID tags every request with a UUID, echoed in the X-Request-ID
// response header, so log lines from one request can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// NewRouter wires all handlers into the route tree. The users resolver backs
// the auth middleware's live-subject check; the limiter throttles the
// credential endpoints.
func NewRouter(
	auth *authhandler.AuthHandler,
	tasks *taskhandler.TaskHandler,
	analytics *analyticshandler.AnalyticsHandler,
	users jwtmw.UserResolver,
	limiter ratelimiter.Limiter,
) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	// No authentication required
	r.GET("/healthz", platformhandler.Health)

	public := r.Group("/api/auth")
	public.Use(ratelimiter.Middleware(limiter))
	{
		public.POST("/register", auth.Register)
		public.POST("/login", auth.Login)
	}

	// Authenticated routes: the middleware rejects the request before any
	// domain logic runs when the token or its subject is invalid.
	authed := r.Group("/api")
	authed.Use(jwtmw.AuthRequired(users))
	{
		authed.GET("/tasks", tasks.List)
		authed.POST("/tasks", tasks.Create)
		authed.PUT("/tasks/:id", tasks.Update)
		authed.DELETE("/tasks/:id", tasks.Delete)
		authed.POST("/tasks/:id/subtasks", tasks.AddSubtask)
		authed.PUT("/tasks/:id/subtasks/:subtaskId", tasks.UpdateSubtask)
		authed.DELETE("/tasks/:id/subtasks/:subtaskId", tasks.DeleteSubtask)

		authed.GET("/analytics", analytics.Stats)
		authed.GET("/analytics/export", analytics.Export)

		admin := authed.Group("/admin")
		admin.Use(jwtmw.AdminRequired())
		{
			admin.GET("/users", auth.ListUsers)
		}
	}

	return r
}
