package routers

import (
	"net/http"
)

func MainRouter() *http.ServeMux {

	mux := http.NewServeMux()

	aRouter := adminsRouter()
	mux.Handle("/admins/", aRouter)

	eRouter := expensesRouter()
	mux.Handle("/expenses/", eRouter)

	rRouter := reportsRouter()
	mux.Handle("/reports/", rRouter)

	return mux
}
