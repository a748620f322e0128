package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	Address string  `json:"address" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Total   float64 `json:"total" binding:"required"`
}

type AddOrderItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Response Structs --------

// ProductSnapshot is the live product view attached to order items on read.
type ProductSnapshot struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

type OrderItemView struct {
	models.OrderItem
	Product ProductSnapshot `json:"product"`
}

type OrderView struct {
	models.Order
	Items []OrderItemView `json:"items"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToUpper(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// attachProducts joins each order item to a live product snapshot. Items whose
// product row was hard-deleted are dropped; soft-deleted products still render
// so order history stays intact.
func attachProducts(db *gorm.DB, order models.Order) OrderView {
	view := OrderView{Order: order, Items: []OrderItemView{}}
	for _, item := range order.Items {
		var product models.Product
		if err := db.Select("id", "name", "price", "image_url").
			First(&product, "id = ?", item.ProductID).Error; err != nil {
			continue
		}
		view.Items = append(view.Items, OrderItemView{
			OrderItem: item,
			Product: ProductSnapshot{
				ID:       product.ID,
				Name:     product.Name,
				Price:    product.Price,
				ImageURL: product.ImageURL,
			},
		})
	}
	return view
}

// -------- Handlers --------

// POST /user/orders
// Step one of checkout: writes the order header with status PENDING. The total
// arrives from the client (line items plus chosen shipping) and is stored
// as-is. Items follow via AddOrderItem; clearing the cart stays with the
// caller after all items succeed.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			OrderRef:  generateOrderRef(),
			UserID:    userID,
			Address:   req.Address,
			Phone:     req.Phone,
			Total:     req.Total,
			Status:    models.OrderStatusPending,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"order_id": order.ID, "order_ref": order.OrderRef})
	}
}

// POST /user/orders/:orderID/items
// Step two of checkout, called once per cart line. Creates the order item with
// the price frozen at order time and deducts stock. Item insert and stock
// deduction run in one transaction; the deduction is a conditional update
// (quantity >= requested), so stock can never go negative and an order for
// more than the available stock is rejected.
func AddOrderItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		orderID := c.Param("orderID")

		var req AddOrderItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		var item models.OrderItem
		err := db.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
				return err
			}

			result := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", req.ProductID, req.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", req.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errors.New("insufficient stock for product: " + product.Name)
			}

			item = models.OrderItem{
				OrderID:   order.ID,
				ProductID: req.ProductID,
				Quantity:  req.Quantity,
				Price:     req.Price,
			}
			return tx.Create(&item).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// GET /user/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		views := make([]OrderView, 0, len(orders))
		for _, order := range orders {
			views = append(views, attachProducts(db, order))
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /seller/orders
// Scans all orders and keeps only the items whose product belongs to a brand
// the requesting seller co-owns. Orders left with no matching items are
// dropped entirely. Full scan, fine at this catalog's scale.
func GetSellerOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		views := []OrderView{}
		for _, order := range orders {
			view := OrderView{Order: order, Items: []OrderItemView{}}
			for _, item := range order.Items {
				var product models.Product
				if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
					continue
				}
				var link models.BrandOwner
				if err := db.Where("user_id = ? AND brand_id = ?", sellerID, product.BrandID).
					First(&link).Error; err != nil {
					continue
				}
				view.Items = append(view.Items, OrderItemView{
					OrderItem: item,
					Product: ProductSnapshot{
						ID:       product.ID,
						Name:     product.Name,
						Price:    product.Price,
						ImageURL: product.ImageURL,
					},
				})
			}
			if len(view.Items) > 0 {
				views = append(views, view)
			}
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /admin/orders
func GetAdminOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		views := []OrderView{}
		for _, order := range orders {
			view := attachProducts(db, order)
			if len(view.Items) > 0 {
				views = append(views, view)
			}
		}
		c.JSON(http.StatusOK, views)
	}
}

// PUT /admin/orders/:orderID/status
// Unconditional overwrite. There is no transition graph: any status may be set
// from any status.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DELETE /admin/orders/:orderID
// Hard delete: items first, then the order, in one transaction.
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", orderID).Delete(&models.Order{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
