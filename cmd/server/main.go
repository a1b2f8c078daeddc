package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"garden/config"
	"garden/database"
	"garden/router"

	// Auth + Health
	authCtrlImp "garden/pkg/auth/controllerImp"
	healthCtrlImp "garden/pkg/health/controllerImp"

	// Garden inventory
	gardenCtrlImp "garden/pkg/garden/controllerImp"
	gardenRepoImp "garden/pkg/garden/repositoryImp"

	// Soil samples
	soilCtrlImp "garden/pkg/soil/controllerImp"
	soilRepoImp "garden/pkg/soil/repositoryImp"

	// Irrigation events
	waterCtrlImp "garden/pkg/water/controllerImp"
	waterRepoImp "garden/pkg/water/repositoryImp"

	// Advisory engine
	advisorCtrlImp "garden/pkg/advisor/controllerImp"
	advisorSvc "garden/pkg/advisor/serviceImp"
	"garden/pkg/reference"

	// Knowledge base
	kbCtrlImp "garden/pkg/kb/controllerImp"
	kbRepoImp "garden/pkg/kb/repositoryImp"
	kbServiceImp "garden/pkg/kb/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Plant profile tables (builtin + optional overrides)
	table, err := reference.LoadFromFiles(cfg.ProfileCSV, cfg.ProfileXLSX)
	if err != nil {
		log.Printf("profiles warn: %v", err)
		table = reference.NewTable()
	}

	// 5) KB wiring
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbServiceImp.New(kbRepo)
	kbCtrl := kbCtrlImp.New(kbSvc, cfg.KBDomains)

	// 6) Repos/Controllers
	gRepo := gardenRepoImp.New(db)
	sRepo := soilRepoImp.New(db)
	wRepo := waterRepoImp.New(db)
	gCtrl := gardenCtrlImp.New(gRepo)
	sCtrl := soilCtrlImp.New(sRepo, gRepo)
	wCtrl := waterCtrlImp.New(wRepo, gRepo)

	// Advisor service depends on profiles/repos + kb
	aSvc := advisorSvc.New(table, gRepo, sRepo, wRepo, kbSvc)
	aCtrl := advisorCtrlImp.New(aSvc)

	// Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db, table)

	// 7) Router
	r := router.New(
		e,
		cfg.StrictAuth,
		gCtrl,
		sCtrl,
		wCtrl,
		aCtrl,
		authCtrl,
		kbCtrl,
		hCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
