package router

import (
	"forum_api/internal/config"
	"forum_api/internal/handler"
	"forum_api/internal/middleware"
	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"
	"forum_api/internal/repository/redis"
	"forum_api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func InitRouter(cfg *config.Config, log *zap.Logger, db *gorm.DB, tokens *pkg.TokenService) *gin.Engine {
	r := gin.Default()

	userRepo := mysql.NewUserRepository(db)
	postRepo := mysql.NewPostRepository(db)
	commentRepo := mysql.NewCommentRepository(db)
	tagRepo := mysql.NewTagRepository(db)
	voteRepo := mysql.NewVoteRepository(db)
	sessions := redis.NewSessionRepository(tokens.AccessTTL())
	codes := &redis.ResetCodeRepository{}

	smtp := pkg.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}

	user := handler.NewUserHandler(service.NewUserService(userRepo, sessions, codes, tokens))
	email := handler.NewEmailHandler(service.NewEmailService(smtp, userRepo, codes))
	post := handler.NewPostHandler(service.NewPostService(postRepo))
	comment := handler.NewCommentHandler(service.NewCommentService(commentRepo, postRepo))
	tag := handler.NewTagHandler(service.NewTagService(tagRepo))
	vote := handler.NewVoteHandler(service.NewVoteService(voteRepo))

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/reset/code", email.SendResetCode)
	}

	authGroup := r.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(tokens, sessions, log))
	{
		authGroup.GET("/user/:name", user.Get)
		authGroup.POST("/user/logout", user.Logout)
		authGroup.POST("/user/change-password", user.ChangePassword)

		authGroup.POST("/post/create", post.Create)
		authGroup.GET("/post/:id", post.Get)
		authGroup.PUT("/post/:id", post.Update)
		authGroup.GET("/post/:id/comments", comment.ListByPost)
		authGroup.GET("/post/:id/tags", tag.ListByPost)
		authGroup.POST("/post/:id/vote", vote.VotePost)
		authGroup.POST("/post/:id/tag", tag.TagPost)

		authGroup.POST("/comment/create", comment.Create)
		authGroup.GET("/comment/:id", comment.Get)
		authGroup.POST("/comment/:id/vote", vote.VoteComment)

		authGroup.POST("/tag/create", tag.Create)
	}

	return r
}
