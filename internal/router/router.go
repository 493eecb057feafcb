package router

import (
	"github.com/germangodoy93/FinanzasBackend/internal/config"
	"github.com/germangodoy93/FinanzasBackend/internal/handler"
	"github.com/germangodoy93/FinanzasBackend/internal/middleware"
	"github.com/germangodoy93/FinanzasBackend/internal/service"
	"github.com/germangodoy93/FinanzasBackend/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the whole API route table.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestLogger(cfg.Log.File))

	// repos share the one process-wide database handle
	creds := store.NewCredentials(db)
	txns := store.NewTransactions(db)
	profiles := store.NewProfiles(db)
	backups := store.NewBackups(db)

	credSvc := service.NewCredentialService(creds)
	ledgerSvc := service.NewLedgerService(txns)
	profileSvc := service.NewProfileService(profiles)
	backupSvc := service.NewBackupService(backups, txns, profiles, cfg.Backup.Dir)

	r.GET("/", handler.Health)

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(credSvc)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	txnHandler := handler.NewTxnHandler(ledgerSvc)
	api.GET("/txns", txnHandler.List)
	api.POST("/txns", txnHandler.Create)
	api.DELETE("/txns/:id", txnHandler.Delete)

	exportHandler := handler.NewExportHandler(ledgerSvc)
	api.GET("/txns/export.csv", exportHandler.ExportCSV)
	api.GET("/txns/export.xlsx", exportHandler.ExportXLSX)

	profileHandler := handler.NewProfileHandler(profileSvc)
	api.GET("/profile", profileHandler.Get)
	api.POST("/profile", profileHandler.Save)

	backupHandler := handler.NewBackupHandler(backupSvc)
	api.POST("/backups", backupHandler.Create)
	api.GET("/backups", backupHandler.List)
	api.GET("/backups/:id/download", backupHandler.Download)
	api.POST("/backups/:id/restore", backupHandler.Restore)
	api.DELETE("/backups/:id", backupHandler.Delete)

	return r
}
