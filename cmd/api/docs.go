package main

// General API documentation for swaggo. Regenerate with `go generate ./cmd/api`.
//
// @title           Air Quality Prediction API
// @version         1.0
// @description     API for predicting six air pollutant concentrations from geographic coordinates using a pre-trained gradient boosted tree model.
//
// @contact.name   API Support
// @contact.email  support@example.com
//
// @BasePath  /
//
// @schemes http
