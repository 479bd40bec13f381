package router

import "net/http"

type TransactionRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

func New(
	transactionController TransactionRouteRegistrar,
	accountController AccountRouteRegistrar,
) *http.ServeMux {
	mux := http.NewServeMux()

	if transactionController != nil {
		transactionController.RegisterRoutes(mux)
	}
	if accountController != nil {
		accountController.RegisterRoutes(mux)
	}

	return mux
}
