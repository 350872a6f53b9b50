// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/repositories.go -destination=repositories_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/checkout_service.go -destination=checkout_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/catalog_service.go -destination=catalog_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/billing_service.go -destination=billing_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/statistics_service.go -destination=statistics_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/client_service.go -destination=client_service_mock.go -package=mocks
