package routers

import (
	"net/http"

	"ihumure/internal/api/handlers/reports"
)

func reportsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/reports/create", reports.CreateReportHandler)
	mux.HandleFunc("/reports/{id}/replies", reports.CreateReplyHandler)
	mux.HandleFunc("/reports/{id}", reportByIdHandler)
	mux.HandleFunc("/reports/", reports.GetAllReportsHandler)

	return mux
}

func reportByIdHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		reports.GetReportByIdHandler(w, r)
	case http.MethodPut:
		reports.UpdateReportHandler(w, r)
	case http.MethodDelete:
		reports.DeleteReportHandler(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
