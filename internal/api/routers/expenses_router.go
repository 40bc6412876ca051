package routers

import (
	"net/http"

	"ihumure/internal/api/handlers/expenses"
)

func expensesRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/expenses/create", expenses.CreateExpenseHandler)
	mux.HandleFunc("/expenses/export/csv", expenses.ExportExpensesCSVHandler)
	mux.HandleFunc("/expenses/{id}/status", expenses.UpdateExpenseStatusHandler)
	mux.HandleFunc("/expenses/{id}", expenseByIdHandler)
	mux.HandleFunc("/expenses/", expenses.GetAllExpensesHandler)

	return mux
}

// expenseByIdHandler fans out by method since GET/PUT/DELETE share the path.
func expenseByIdHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		expenses.GetExpenseByIdHandler(w, r)
	case http.MethodPut:
		expenses.UpdateExpenseHandler(w, r)
	case http.MethodDelete:
		expenses.DeleteExpenseHandler(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
