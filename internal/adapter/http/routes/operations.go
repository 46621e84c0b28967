package routes

import (
	"mecanica_gestao/internal/adapter/http/handlers"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func can(module entities.Module, action entities.Action) gin.HandlerFunc {
	return middleware.RequirePermission(module, action)
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	rg.GET("", can(entities.ModuleCustomers, entities.ActionView), h.ListCustomers)
	rg.POST("", can(entities.ModuleCustomers, entities.ActionCreate), h.CreateCustomer)
	rg.GET("/:id", can(entities.ModuleCustomers, entities.ActionView), h.GetCustomer)
	rg.PUT("/:id", can(entities.ModuleCustomers, entities.ActionEdit), h.UpdateCustomer)
	rg.DELETE("/:id", can(entities.ModuleCustomers, entities.ActionDelete), h.DeleteCustomer)

	rg.GET("/:id/vehicles", can(entities.ModuleVehicles, entities.ActionView), h.ListVehicles)
	rg.POST("/:id/vehicles", can(entities.ModuleVehicles, entities.ActionCreate), h.AddVehicle)
	rg.PUT("/:id/vehicles/:vehicle_id", can(entities.ModuleVehicles, entities.ActionEdit), h.UpdateVehicle)
	rg.DELETE("/:id/vehicles/:vehicle_id", can(entities.ModuleVehicles, entities.ActionDelete), h.DeleteVehicle)
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler) {
	rg.GET("", can(entities.ModuleBudgets, entities.ActionView), h.ListBudgets)
	rg.POST("", can(entities.ModuleBudgets, entities.ActionCreate), h.CreateBudget)
	rg.GET("/:id", can(entities.ModuleBudgets, entities.ActionView), h.GetBudget)
	rg.PATCH("/:id/status", can(entities.ModuleBudgets, entities.ActionEdit), h.UpdateStatus)
	rg.PATCH("/:id/approve", can(entities.ModuleBudgets, entities.ActionEdit), h.ApproveBudget)
	rg.PATCH("/:id/reject", can(entities.ModuleBudgets, entities.ActionEdit), h.RejectBudget)
	rg.POST("/:id/convert", can(entities.ModuleServiceOrders, entities.ActionCreate), h.ConvertBudget)
	rg.POST("/:id/finalize", can(entities.ModuleServiceOrders, entities.ActionCreate), h.FinalizeBudget)
}

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler) {
	rg.GET("", can(entities.ModuleServiceOrders, entities.ActionView), h.ListServiceOrders)
	rg.GET("/:id", can(entities.ModuleServiceOrders, entities.ActionView), h.GetServiceOrder)
	rg.PUT("/:id", can(entities.ModuleServiceOrders, entities.ActionEdit), h.EditServiceOrder)
	rg.POST("/:id/cancel", can(entities.ModuleServiceOrders, entities.ActionEdit), h.CancelServiceOrder)
	rg.POST("/:id/complete", can(entities.ModuleServiceOrders, entities.ActionEdit), h.CompleteServiceOrder)
	rg.POST("/:id/notify", can(entities.ModuleServiceOrders, entities.ActionView), h.NotifyCustomer)
	rg.GET("/:id/pdf", can(entities.ModuleServiceOrders, entities.ActionExport), h.ExportPDF)
}

func addFinanceRoutes(rg *gin.RouterGroup, receivables *handlers.ReceivableHandler, payables *handlers.PayableHandler) {
	rec := rg.Group(PathReceivables)
	{
		rec.GET("", can(entities.ModuleReceivables, entities.ActionView), receivables.ListReceivables)
		rec.GET("/export", can(entities.ModuleReceivables, entities.ActionExport), receivables.ExportXLSX)
		rec.GET("/:id", can(entities.ModuleReceivables, entities.ActionView), receivables.GetReceivable)
		rec.POST("/:id/payments", can(entities.ModuleReceivables, entities.ActionEdit), receivables.RegisterPayment)
		rec.POST("/:id/charges", can(entities.ModuleReceivables, entities.ActionEdit), receivables.ChargeOnline)
		rec.GET("/:id/charges", can(entities.ModuleReceivables, entities.ActionView), receivables.ListCharges)
		rec.GET("/:id/charges/latest", can(entities.ModuleReceivables, entities.ActionView), receivables.LatestCharge)
		rec.POST("/:id/charges/:charge_id/refresh", can(entities.ModuleReceivables, entities.ActionEdit), receivables.RefreshCharge)
	}

	pay := rg.Group(PathPayables)
	{
		pay.GET("", can(entities.ModulePayables, entities.ActionView), payables.ListPayables)
		pay.POST("", can(entities.ModulePayables, entities.ActionCreate), payables.CreatePayable)
		pay.POST("/:id/pay", can(entities.ModulePayables, entities.ActionEdit), payables.PayPayable)
	}

	com := rg.Group(PathCommissions)
	{
		com.GET("", can(entities.ModuleCommissions, entities.ActionView), payables.ListCommissions)
		com.POST("/:id/pay", can(entities.ModuleCommissions, entities.ActionEdit), payables.PayCommission)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.Use(can(entities.ModuleDashboard, entities.ActionView))
	rg.GET("", h.Overview)
	rg.GET("/financial", h.FinancialKPIs)
	rg.GET("/orders", h.OSMetrics)
	rg.GET("/stock", h.StockMetrics)
	rg.GET("/daily", h.DailySummary)
}

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	rg.GET("", can(entities.ModuleUsers, entities.ActionView), h.ListUsers)
	rg.POST("", can(entities.ModuleUsers, entities.ActionCreate), h.CreateUser)
	rg.GET("/:id", can(entities.ModuleUsers, entities.ActionView), h.GetUser)
	rg.PUT("/:id", can(entities.ModuleUsers, entities.ActionEdit), h.UpdateUser)
	rg.DELETE("/:id", can(entities.ModuleUsers, entities.ActionDelete), h.DeleteUser)
	rg.POST("/:id/avatar", can(entities.ModuleUsers, entities.ActionEdit), h.UploadAvatar)
	rg.GET("/:id/audit", can(entities.ModuleAuditLogs, entities.ActionView), h.AuditTrail)
}
