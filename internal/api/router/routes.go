// Package router quản lý việc định tuyến cho API.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// QUAN TRỌNG: CÁCH ĐĂNG KÝ MIDDLEWARE VỚI FIBER V3
// ============================================================================
//
// Fiber v3 không gọi middleware khi truyền trực tiếp vào route:
//
//   router.Get("/path", middleware, handler)   // middleware KHÔNG được gọi
//
// Phải đăng ký qua group.Use():
//
//   RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{middleware}, handler)
//
// Tất cả route cần xác thực trong các file routes.go của từng domain
// đều phải đi qua RegisterRouteWithMiddleware.
// ============================================================================

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix gốc, ví dụ /api/v1
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api/v1",
	}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// App trả về fiber app gốc
func (r *Router) App() *fiber.App {
	return r.app
}

// RegisterRouteWithMiddleware đăng ký một route kèm middleware qua group.Use().
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}
