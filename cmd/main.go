package main

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/lankanwheels/dealership/internal/activity"
	"github.com/lankanwheels/dealership/internal/auth"
	"github.com/lankanwheels/dealership/internal/config"
	"github.com/lankanwheels/dealership/internal/db"
	"github.com/lankanwheels/dealership/internal/handlers"
	"github.com/lankanwheels/dealership/internal/middleware"
)

func main() {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()

	client, err := db.ConnectMongo(cfg.MongoURI)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to MongoDB")
	}
	logger.Info("connected to MongoDB")
	database := client.Database(cfg.MongoDB)

	users := &db.MongoUserCollection{Collection: database.Collection("users")}
	vehicles := &db.MongoVehicleCollection{Collection: database.Collection("vehicles")}
	repairs := &db.MongoRepairCollection{Collection: database.Collection("repairs")}
	requests := &db.MongoRequestCollection{Collection: database.Collection("modification_requests")}
	activities := &db.MongoActivityCollection{Collection: database.Collection("user_activities")}

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	if err := db.SeedUsers(context.Background(), users, authService.HashPassword); err != nil {
		logger.WithError(err).Fatal("failed to seed users")
	}

	var publisher activity.Publisher
	if cfg.MQTTBroker != "" {
		mqttPublisher, err := activity.NewMQTTPublisher(cfg.MQTTBroker)
		if err != nil {
			logger.WithError(err).Warn("activity feed disabled: MQTT broker unreachable")
		} else {
			defer mqttPublisher.Close()
			publisher = mqttPublisher
			logger.WithField("broker", cfg.MQTTBroker).Info("activity feed enabled")
		}
	}
	recorder := activity.NewRecorder(activities, logger, publisher)

	authMW := middleware.NewAuthMiddleware(authService)

	router := handlers.NewRouter(
		handlers.NewAuthHandler(authService, users, recorder),
		handlers.NewVehicleHandler(vehicles, recorder),
		handlers.NewRepairHandler(repairs, vehicles, recorder),
		handlers.NewRequestHandler(requests, vehicles, recorder),
		handlers.NewDashboardHandler(vehicles, repairs, requests, activities),
		handlers.NewEmployeeHandler(users, activities),
		authMW,
		logger,
	)

	logger.WithField("port", cfg.Port).Info("HTTP server listening")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
