package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/app/domain/announcement"
	"github.com/FACorreiaa/go-stallui/internal/app/domain/application"
	"github.com/FACorreiaa/go-stallui/internal/app/domain/auth"
	"github.com/FACorreiaa/go-stallui/internal/app/domain/dashboard"
	"github.com/FACorreiaa/go-stallui/internal/app/domain/feedback"
	"github.com/FACorreiaa/go-stallui/internal/app/domain/home"
	"github.com/FACorreiaa/go-stallui/internal/app/domain/hygiene"
	"github.com/FACorreiaa/go-stallui/internal/app/domain/rental"
	"github.com/FACorreiaa/go-stallui/internal/app/domain/stall"
	"github.com/FACorreiaa/go-stallui/internal/app/domain/user"
	"github.com/FACorreiaa/go-stallui/internal/app/guard"
	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/middleware"
)

// Route metadata of the three access levels.
var (
	Public    = guard.Meta{}
	Protected = guard.Meta{RequiresAuth: true}
	Admin     = guard.Meta{RequiresAuth: true, RequiresAdmin: true}
)

type AppHandlers struct {
	Base         *handlers.BaseHandler
	Home         *home.HomeHandlers
	Auth         *auth.AuthHandlers
	Stall        *stall.StallHandlers
	Announcement *announcement.AnnouncementHandlers
	Application  *application.ApplicationHandlers
	Rental       *rental.RentalHandlers
	Feedback     *feedback.FeedbackHandlers
	Hygiene      *hygiene.HygieneHandlers
	User         *user.UserHandlers
	Dashboard    *dashboard.DashboardHandlers
}

func NewAppHandlers(log *zap.Logger) *AppHandlers {
	base := handlers.NewBaseHandler(log)
	return &AppHandlers{
		Base:         base,
		Home:         home.NewHomeHandlers(base),
		Auth:         auth.NewAuthHandlers(base),
		Stall:        stall.NewStallHandlers(base),
		Announcement: announcement.NewAnnouncementHandlers(base),
		Application:  application.NewApplicationHandlers(base),
		Rental:       rental.NewRentalHandlers(base),
		Feedback:     feedback.NewFeedbackHandlers(base),
		Hygiene:      hygiene.NewHygieneHandlers(base),
		User:         user.NewUserHandlers(base),
		Dashboard:    dashboard.NewDashboardHandlers(base),
	}
}

// Setup registers every page. Each group carries its guard metadata;
// form submissions share the metadata of the page they belong to.
func Setup(r *gin.Engine, g *guard.Guard, log *zap.Logger) {
	setupRouter(r, g, NewAppHandlers(log))
}

func setupRouter(r *gin.Engine, g *guard.Guard, h *AppHandlers) {
	public := r.Group("/")
	{
		public.GET("/", h.Home.ShowHomePage)
		public.GET("/stall", h.Stall.List)
		public.GET("/stall/:id", h.Stall.Detail)
		public.GET("/announcement", h.Announcement.List)
		public.GET("/announcement/:id", h.Announcement.Detail)
		public.GET("/login", h.Auth.ShowLogin)
		public.POST("/login", h.Auth.Login)
		public.GET("/register", h.Auth.ShowRegister)
		public.POST("/register", h.Auth.Register)
		public.POST("/logout", h.Auth.Logout)
	}

	protected := r.Group("/", g.Middleware(Protected, middleware.ResolveGuard))
	{
		protected.GET("/application", h.Application.My)
		protected.GET("/application/submit/:stallId", h.Application.SubmitForm)
		protected.POST("/application/submit/:stallId", h.Application.Submit)
		protected.GET("/application/:id", h.Application.Detail)
		protected.POST("/application/:id/cancel", h.Application.Cancel)

		protected.GET("/rental", h.Rental.My)

		protected.GET("/feedback", h.Feedback.My)
		protected.GET("/feedback/submit", h.Feedback.SubmitForm)
		protected.POST("/feedback/submit", h.Feedback.Submit)

		protected.GET("/profile", h.User.ShowProfile)
		protected.POST("/profile", h.User.UpdateProfile)
		protected.POST("/profile/password", h.User.UpdatePassword)
	}

	admin := r.Group("/admin", g.Middleware(Admin, middleware.ResolveGuard))
	{
		admin.GET("", h.Dashboard.Show)

		admin.GET("/user", h.User.AdminList)
		admin.GET("/user/:id/edit", h.User.AdminEdit)
		admin.POST("/user/:id", h.User.AdminUpdate)
		admin.POST("/user/:id/status", h.User.AdminStatus)
		admin.POST("/user/:id/reset-password", h.User.AdminResetPassword)
		admin.POST("/user/:id/delete", h.User.AdminDelete)

		admin.GET("/stall", h.Stall.AdminList)
		admin.GET("/stall/new", h.Stall.AdminNew)
		admin.POST("/stall", h.Stall.AdminCreate)
		admin.GET("/stall/:id/edit", h.Stall.AdminEdit)
		admin.POST("/stall/:id", h.Stall.AdminUpdate)
		admin.POST("/stall/:id/status", h.Stall.AdminStatus)
		admin.POST("/stall/:id/delete", h.Stall.AdminDelete)

		admin.GET("/stall/type", h.Stall.TypeList)
		admin.POST("/stall/type", h.Stall.TypeCreate)
		admin.GET("/stall/type/:id/edit", h.Stall.TypeEdit)
		admin.POST("/stall/type/:id", h.Stall.TypeUpdate)
		admin.POST("/stall/type/:id/delete", h.Stall.TypeDelete)

		admin.GET("/application", h.Application.AdminList)
		admin.GET("/application/:id", h.Application.AdminDetail)
		admin.POST("/application/:id/review", h.Application.AdminReview)
		admin.POST("/application/:id/approve", h.Application.AdminApprove)

		admin.GET("/rental", h.Rental.AdminList)
		admin.POST("/rental/:id/payment", h.Rental.AdminPayment)
		admin.POST("/rental/:id/terminate", h.Rental.AdminTerminate)

		admin.GET("/hygiene", h.Hygiene.AdminList)
		admin.GET("/hygiene/new", h.Hygiene.AdminNew)
		admin.POST("/hygiene", h.Hygiene.AdminCreate)
		admin.GET("/hygiene/:id/edit", h.Hygiene.AdminEdit)
		admin.POST("/hygiene/:id", h.Hygiene.AdminUpdate)
		admin.POST("/hygiene/:id/rectification", h.Hygiene.AdminRectification)
		admin.POST("/hygiene/:id/delete", h.Hygiene.AdminDelete)

		admin.GET("/feedback", h.Feedback.AdminList)
		admin.GET("/feedback/:id", h.Feedback.AdminDetail)
		admin.POST("/feedback/:id/reply", h.Feedback.AdminReply)
		admin.POST("/feedback/:id/status", h.Feedback.AdminStatus)

		admin.GET("/announcement", h.Announcement.AdminList)
		admin.GET("/announcement/new", h.Announcement.AdminNew)
		admin.POST("/announcement", h.Announcement.AdminCreate)
		admin.GET("/announcement/:id/edit", h.Announcement.AdminEdit)
		admin.POST("/announcement/:id", h.Announcement.AdminUpdate)
		admin.POST("/announcement/:id/publish", h.Announcement.AdminPublish)
		admin.POST("/announcement/:id/unpublish", h.Announcement.AdminUnpublish)
		admin.POST("/announcement/:id/delete", h.Announcement.AdminDelete)

		admin.GET("/profile", h.User.ShowAdminProfile)
	}

	r.NoRoute(h.Base.NotFound)
}
