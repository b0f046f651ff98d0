// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"admarket/internal/cache"
	"admarket/internal/database"
	"admarket/internal/handler"
	"admarket/internal/handler/posts"
	"admarket/internal/handler/users"
	"admarket/internal/middleware"
	"admarket/internal/model"
	"admarket/internal/queue"
	"admarket/internal/service"
	"admarket/internal/worker"
)

// Setup 註冊所有路由與中介層
// pub 可為 nil，此時不發布預約事件
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, up service.MediaUploader, pub queue.Publisher, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db), middleware.RequireAuth)

	// 註冊與登入（泛用與依角色區分的入口）
	apiUsers := api.Group("/users")
	apiUsers.POST("/register", users.RegisterHandler(db, model.RoleUser))
	apiUsers.POST("/register/user", users.RegisterHandler(db, model.RoleUser))
	apiUsers.POST("/register/advertiser", users.RegisterHandler(db, model.RoleAdvertiser))
	apiUsers.POST("/login", users.LoginHandler(db))
	apiUsers.POST("/login/user", users.LoginHandler(db, model.RoleUser))
	apiUsers.POST("/login/advertiser", users.LoginHandler(db, model.RoleAdvertiser, model.RoleAdmin))

	// 使用者查詢，具名路由必須在參數路由之前註冊
	apiUsers.GET("/email/:email", users.GetUserByEmailHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))

	// Profile 與 Settings（僅本人或管理員）
	apiUsers.GET("/:user_id/profile/overview", users.GetProfileOverviewHandler(db), middleware.RequireSelfOrAdmin("user_id"))
	apiUsers.POST("/:user_id/profile", users.UpsertProfileHandler(db), middleware.RequireSelfOrAdmin("user_id"))
	apiUsers.GET("/:user_id/settings", users.GetSettingsHandler(db), middleware.RequireSelfOrAdmin("user_id"))
	apiUsers.POST("/:user_id/settings", users.UpsertSettingsHandler(db), middleware.RequireSelfOrAdmin("user_id"))

	// 貼文
	apiPosts := api.Group("/posts")
	apiPosts.POST("", posts.CreatePostHandler(db, up, wp), middleware.RequireAuth)
	apiPosts.GET("", posts.ListPostsHandler(db))
	apiPosts.GET("/advertiser/:advertiser_id", posts.ListPostsByAdvertiserHandler(db))
	apiPosts.POST("/save", posts.SavePostHandler(db), middleware.RequireAuth)
	apiPosts.GET("/saved/:client_id", posts.ListSavedPostsHandler(db), middleware.RequireAuth)
	apiPosts.GET("/:id", posts.GetPostDetailsHandler(db))
	apiPosts.GET("/:id/engagement", posts.GetPostEngagementHandler(db, rdb))
	apiPosts.POST("/:id/reserve", posts.ReservePostHandler(db, pub, wp), middleware.RequireAuth)
}
