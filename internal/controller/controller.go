package controller

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/ArtytL/loh2-site/internal/dto"
	"github.com/ArtytL/loh2-site/internal/service"
	"github.com/ArtytL/loh2-site/pkg/response"
)

type Controller struct {
	productService service.ProductService
	orderService   service.OrderService
	adminService   service.AdminService
}

func CreateController(e *echo.Group, productService service.ProductService, orderService service.OrderService, adminService service.AdminService) {
	c := Controller{
		productService: productService,
		orderService:   orderService,
		adminService:   adminService,
	}

	e.GET("/products", c.GetProducts)
	e.POST("/products", c.AddProduct)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
	e.POST("/products/repair", c.RepairProducts)

	e.GET("/orders", c.GetOrders)
	e.POST("/orders", c.AddOrder)
	e.PUT("/orders/:id", c.UpdateOrderFlags)
	e.DELETE("/orders/:id", c.DeleteOrder)

	e.POST("/admin/login", c.AdminLogin)
}

// bearerToken pulls the credential out of the Authorization header; services
// decide whether it authorizes anything.
func bearerToken(e echo.Context) string {
	header := e.Request().Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}

func (c *Controller) GetProducts(e echo.Context) error {
	items, err := c.productService.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products", dto.ProductListResponse{Items: items})
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	item, err := c.productService.AddProduct(e.Request().Context(), bearerToken(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", item)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	payload := dto.ProductPatch{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	item, err := c.productService.UpdateProduct(e.Request().Context(), bearerToken(e), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", item)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	deleted, err := c.productService.DeleteProduct(e.Request().Context(), bearerToken(e), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.DeleteResponse{Deleted: deleted})
}

func (c *Controller) RepairProducts(e echo.Context) error {
	resp, err := c.productService.RepairProducts(e.Request().Context(), bearerToken(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) GetOrders(e echo.Context) error {
	items, err := c.orderService.GetOrders(e.Request().Context(), bearerToken(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved orders", dto.OrderListResponse{Items: items})
}

func (c *Controller) AddOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	item, err := c.orderService.AddOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", item)
}

func (c *Controller) UpdateOrderFlags(e echo.Context) error {
	payload := dto.OrderFlagsPatch{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderFlags").Msg("")
	}

	item, err := c.orderService.UpdateOrderFlags(e.Request().Context(), bearerToken(e), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", item)
}

func (c *Controller) DeleteOrder(e echo.Context) error {
	deleted, err := c.orderService.DeleteOrder(e.Request().Context(), bearerToken(e), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.DeleteResponse{Deleted: deleted})
}

func (c *Controller) AdminLogin(e echo.Context) error {
	payload := dto.AdminLoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AdminLogin").Msg("")
	}

	resp, err := c.adminService.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
