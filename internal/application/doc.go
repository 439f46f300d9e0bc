// Package application provides application initialization and dependency wiring.
// It loads the delivery catalog, creates the catalog storage, handlers, routers
// and HTTP server instances, keeping the main package focused on CLI parsing
// and orchestration.
package application
