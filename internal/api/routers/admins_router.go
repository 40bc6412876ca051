package routers

import (
	"net/http"

	"ihumure/internal/api/handlers/admins"
	"ihumure/internal/api/handlers/auth"
)

func adminsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/admins/signup", auth.RegisterAdminsHandler)
	mux.HandleFunc("/admins/confirmotp", auth.ConfirmOtpHandler)
	mux.HandleFunc("/admins/resendotp", auth.ResendOtpHandler)

	mux.HandleFunc("/admins/login", auth.LoginHandler)
	mux.HandleFunc("/admins/logout", auth.LogoutHandler)
	mux.HandleFunc("/admins/forgotpassword", auth.ForgotPasswordHandler)
	mux.HandleFunc("/admins/resetpassword/reset/{resetcode}", auth.ResetPasswordHandler)
	mux.HandleFunc("/admins/updatepassword", auth.UpdatePasswordHandler)

	mux.HandleFunc("/admins/directory", admins.GetAllAdminsHandler)
	mux.HandleFunc("/admins/profile", admins.UpdateProfileHandler)
	mux.HandleFunc("/admins/{id}", admins.GetAdminByIdHandler)
	mux.HandleFunc("/admins/{id}/status", admins.SetAdminStatusHandler)

	return mux
}
