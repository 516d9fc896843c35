package routes

import (
	"net/http"

	"savoria/addons"
	"savoria/auth"
	"savoria/inquiries"
	"savoria/inventory"
	"savoria/middleware"
	"savoria/packages"
	"savoria/pay"
	"savoria/ratelim"
	"savoria/receipts"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/addonpic/*filepath", http.Dir("static/addonpic"))
	router.ServeFiles("/static/packagepic/*filepath", http.Dir("static/packagepic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddInquiryRoutes(router *httprouter.Router, hub *inquiries.Hub) {
	// customer-facing. Proposal routes live under /api/proposals because
	// httprouter rejects a static segment next to the :refId wildcard.
	router.POST("/api/inquiries", ratelim.RateLimit(inquiries.CreateInquiry))
	router.GET("/api/proposals/verify/:token", ratelim.RateLimit(inquiries.VerifyProposal))
	router.POST("/api/proposals/confirm", ratelim.RateLimit(inquiries.ConfirmProposal))
	router.GET("/api/inquiries/:refId", inquiries.GetInquiry)
	router.GET("/api/inquiries/:refId/updates", inquiries.BookingUpdatesWS(hub))
	router.GET("/api/inquiries/:refId/receipt", ratelim.RateLimit(receipts.PrintReceipt))

	// back-office
	router.GET("/api/inquiries", middleware.Authenticate(inquiries.ListInquiries))
	router.PUT("/api/inquiries/:refId/status", middleware.Authenticate(inquiries.UpdateInquiryStatus))
	router.POST("/api/inquiries/:refId/send-proposal", middleware.Authenticate(inquiries.SendProposal))
	router.DELETE("/api/inquiries/:refId", middleware.RequireAdmin(inquiries.DeleteInquiry))
}

func AddPackageRoutes(router *httprouter.Router) {
	router.GET("/api/packages", packages.ListPackages)
	router.GET("/api/packages/:id", packages.GetPackage)
	router.POST("/api/packages", middleware.Authenticate(packages.CreatePackage))
	router.PUT("/api/packages/:id", middleware.Authenticate(packages.UpdatePackage))
	router.DELETE("/api/packages/:id", middleware.Authenticate(packages.DeletePackage))
}

func AddAddonRoutes(router *httprouter.Router) {
	router.GET("/api/addons", addons.ListAddons)
	router.POST("/api/addons", middleware.Authenticate(addons.CreateAddon))
	router.PUT("/api/addons/:id", middleware.Authenticate(addons.UpdateAddon))
	router.DELETE("/api/addons/:id", middleware.Authenticate(addons.DeleteAddon))
	router.POST("/api/addons/:id/image", middleware.Authenticate(addons.UploadAddonImage))
}

func AddInventoryRoutes(router *httprouter.Router) {
	router.GET("/api/inventory", middleware.Authenticate(inventory.ListItems))
	router.POST("/api/inventory", middleware.Authenticate(inventory.CreateItem))
	router.PUT("/api/inventory/:id", middleware.Authenticate(inventory.UpdateItem))
	router.DELETE("/api/inventory/:id", middleware.Authenticate(inventory.DeleteItem))
}

func AddPayRoutes(router *httprouter.Router) {
	router.POST("/api/pay/session", ratelim.RateLimit(pay.CreateCheckoutSession))
	router.POST("/api/pay/webhook", pay.Webhook)
}
