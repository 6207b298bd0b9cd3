package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/trackpro/trackpro-api/cache"
	"github.com/trackpro/trackpro-api/initializers"
	"github.com/trackpro/trackpro-api/models"
)

// CartCache is set from main when redis is configured; a nil cache
// means every cart read goes to the database.
var CartCache *cache.CartCache

type cartItemInput struct {
	ProductID        string            `json:"productId" binding:"required"`
	Name             string            `json:"name"`
	Price            float64           `json:"price"`
	Image            string            `json:"image"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants"`
}

func (input cartItemInput) variantsJSON() datatypes.JSON {
	if len(input.SelectedVariants) == 0 {
		return nil
	}
	data, err := json.Marshal(input.SelectedVariants)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

// bindOptionalVariants reads an optional {selectedVariants} body; an
// empty body targets every line for the product id.
func bindOptionalVariants(ctx *gin.Context) (datatypes.JSON, error) {
	if ctx.Request.Body == nil || ctx.Request.ContentLength == 0 {
		return nil, nil
	}

	var input struct {
		SelectedVariants map[string]string `json:"selectedVariants"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	return cartItemInput{SelectedVariants: input.SelectedVariants}.variantsJSON(), nil
}

func respondWithCart(ctx *gin.Context, cart *models.Cart) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cart":      cart,
		"total":     cart.Total(),
		"itemCount": cart.ItemCount(),
	})
}

func loadCart(sessionID string) (*models.Cart, error) {
	var cart models.Cart
	result := initializers.DB.
		Where("session_id = ?", sessionID).
		Preload("Items").
		First(&cart)
	if result.Error != nil {
		return nil, result.Error
	}
	return &cart, nil
}

// persistCartItems replaces the cart's line rows with the in-memory
// state in one transaction.
func persistCartItems(cart *models.Cart) error {
	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for i := range cart.Items {
		cart.Items[i].Model = gorm.Model{}
		cart.Items[i].CartID = int(cart.ID)
		if err := tx.Create(&cart.Items[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

func invalidateCartCache(ctx *gin.Context, sessionID string) {
	if CartCache == nil {
		return
	}
	if err := CartCache.Delete(ctx.Request.Context(), sessionID); err != nil {
		log.Println("Cart cache invalidation failed:", err)
	}
}

func CreateCart(ctx *gin.Context) {
	cart := models.Cart{SessionID: uuid.NewString()}
	if result := initializers.DB.Create(&cart); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create cart")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"sessionId": cart.SessionID})
}

func GetCart(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	if CartCache != nil {
		cached, err := CartCache.Get(ctx.Request.Context(), sessionID)
		if err == nil {
			respondWithCart(ctx, cached)
			return
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Println("Cart cache read failed:", err)
		}
	}

	cart, err := loadCart(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	if CartCache != nil {
		if err := CartCache.Set(ctx.Request.Context(), sessionID, cart); err != nil {
			log.Println("Cart cache write failed:", err)
		}
	}

	respondWithCart(ctx, cart)
}

func AddCartItem(ctx *gin.Context) {
	var input cartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := loadCart(ctx.Param("sessionId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	cart.AddItem(models.CartItem{
		ProductID:        input.ProductID,
		Name:             input.Name,
		Price:            input.Price,
		Image:            input.Image,
		SelectedVariants: input.variantsJSON(),
	}, input.Quantity)

	if err := persistCartItems(cart); err != nil {
		log.Println("Update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart")
		return
	}

	invalidateCartCache(ctx, cart.SessionID)
	respondWithCart(ctx, cart)
}

func UpdateCartItem(ctx *gin.Context) {
	var input struct {
		Quantity         int               `json:"quantity"`
		SelectedVariants map[string]string `json:"selectedVariants"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := loadCart(ctx.Param("sessionId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	variants := cartItemInput{SelectedVariants: input.SelectedVariants}.variantsJSON()
	cart.UpdateQuantity(ctx.Param("productId"), variants, input.Quantity)

	if err := persistCartItems(cart); err != nil {
		log.Println("Update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart")
		return
	}

	invalidateCartCache(ctx, cart.SessionID)
	respondWithCart(ctx, cart)
}

func RemoveCartItem(ctx *gin.Context) {
	variants, err := bindOptionalVariants(ctx)
	if err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := loadCart(ctx.Param("sessionId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	cart.RemoveItem(ctx.Param("productId"), variants)

	if err := persistCartItems(cart); err != nil {
		log.Println("Update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart")
		return
	}

	invalidateCartCache(ctx, cart.SessionID)
	respondWithCart(ctx, cart)
}

// ClearCart empties the lines but keeps the session row, so the same
// session id stays valid after checkout.
func ClearCart(ctx *gin.Context) {
	cart, err := loadCart(ctx.Param("sessionId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	cart.Clear()

	if err := persistCartItems(cart); err != nil {
		log.Println("Update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to clear cart")
		return
	}

	invalidateCartCache(ctx, cart.SessionID)
	respondWithCart(ctx, cart)
}
