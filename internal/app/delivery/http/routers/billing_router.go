package routers

import (
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/billing"

	"github.com/go-chi/chi/v5"
)

func attachBillingRoutes(router chi.Router, middlewares *middlewares.Middlewares, billingController *billing.BillingController) {
	router.Use(middlewares.Authenticate)

	router.Get("/invoices", billingController.FindAllInvoices)
	router.Get("/invoices/{invoice_id}", billingController.FindInvoiceByID)
	router.Get("/invoices/{invoice_id}/document", billingController.GetInvoiceDocumentURL)
	router.Post("/payments", billingController.RecordPayment)
	router.Get("/medicare-claims", billingController.FindMedicareClaims)
	router.Post("/medicare-check", billingController.CheckMedicareEligibility)
}
