package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sposioggi/espositori-api/docs"
	v1 "github.com/sposioggi/espositori-api/internal/api/handler/v1"
	"github.com/sposioggi/espositori-api/internal/api/middleware"
	"github.com/sposioggi/espositori-api/internal/authclient"
	"github.com/sposioggi/espositori-api/internal/config"
	"github.com/sposioggi/espositori-api/internal/repository"
	"github.com/sposioggi/espositori-api/internal/repository/dao"
	"github.com/sposioggi/espositori-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler()
	espositoreHandler := s.initEspositoreHandler(db)
	fieraHandler := s.initFieraHandler(db)
	categoriaHandler := s.initCategoriaHandler(db)
	s.MountHandlers(authHandler, espositoreHandler, fieraHandler, categoriaHandler)

	return s
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	client := authclient.New(s.Config.Auth.ProviderURL, s.Config.Auth.APIKey)
	svc := service.NewAuthService(client)
	handler := v1.NewAuthHandler(svc)

	return handler
}

func (s *Server) initEspositoreHandler(db *gorm.DB) *v1.EspositoreHandler {
	espositoreDAO := dao.NewEspositoreDAO(db)
	repo := repository.NewEspositoreRepository(espositoreDAO)
	categoriaRepo := repository.NewCategoriaRepository(dao.NewCategoriaDAO(db))
	fieraRepo := repository.NewFieraRepository(dao.NewFieraDAO(db))
	svc := service.NewEspositoreService(repo, categoriaRepo)
	exportSvc := service.NewExportService(fieraRepo, categoriaRepo, s.Config.Export.LogoPath)
	handler := v1.NewEspositoreHandler(svc, exportSvc)

	return handler
}

func (s *Server) initFieraHandler(db *gorm.DB) *v1.FieraHandler {
	fieraDAO := dao.NewFieraDAO(db)
	repo := repository.NewFieraRepository(fieraDAO)
	svc := service.NewFieraService(repo)
	handler := v1.NewFieraHandler(svc)

	return handler
}

func (s *Server) initCategoriaHandler(db *gorm.DB) *v1.CategoriaHandler {
	categoriaDAO := dao.NewCategoriaDAO(db)
	repo := repository.NewCategoriaRepository(categoriaDAO)
	svc := service.NewCategoriaService(repo)
	handler := v1.NewCategoriaHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, espositoreHandler *v1.EspositoreHandler, fieraHandler *v1.FieraHandler, categoriaHandler *v1.CategoriaHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.GET("/espositori", espositoreHandler.HandleListEspositori)
		public.GET("/espositori/:espositoreID", espositoreHandler.HandleGetEspositore)
		public.GET("/espositori/:espositoreID/pdf", espositoreHandler.HandleExportPDF)
		public.GET("/fiere", fieraHandler.HandleListFiere)
		public.GET("/fiere/opzioni", fieraHandler.HandleListOpzioniFiere)
		public.GET("/categorie", categoriaHandler.HandleListCategorie)
		public.GET("/categorie/opzioni", categoriaHandler.HandleListOpzioniCategorie)
	}

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
		auth.POST("/auth/logout", authHandler.HandleLogout)
		auth.GET("/auth/session", authHandler.HandleGetSession)
	}

	admin := s.Router.Group(basePath+"/admin", middleware.NewAuthenticator(s.Config.Auth.JWTSecret).VerifyJWT())
	{
		admin.POST("/espositori", espositoreHandler.HandleCreateEspositore)
		admin.PUT("/espositori/:espositoreID", espositoreHandler.HandleUpdateEspositore)
		admin.DELETE("/espositori/:espositoreID", espositoreHandler.HandleDeleteEspositore)
		admin.POST("/espositori/:espositoreID/images", espositoreHandler.HandleAddImage)
		admin.DELETE("/espositori/:espositoreID/images/:index", espositoreHandler.HandleRemoveImage)

		admin.POST("/fiere", fieraHandler.HandleCreateFiera)
		admin.PUT("/fiere/:fieraID", fieraHandler.HandleUpdateFiera)
		admin.DELETE("/fiere/:fieraID", fieraHandler.HandleDeleteFiera)

		admin.POST("/categorie", categoriaHandler.HandleCreateCategoria)
		admin.PUT("/categorie/:categoriaID", categoriaHandler.HandleUpdateCategoria)
		admin.DELETE("/categorie/:categoriaID", categoriaHandler.HandleDeleteCategoria)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Sposi Oggi Espositori API"
	docs.SwaggerInfo.Description = "Exhibitor directory for the Sposi Oggi wedding fairs."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
