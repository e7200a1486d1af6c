package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neggmmm/brandbite-sub000/repository"
	"github.com/neggmmm/brandbite-sub000/services"
	"github.com/neggmmm/brandbite-sub000/utils"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

// CreateTable -> staff adds a table to the floor
func (tc *TableController) CreateTable(c *gin.Context) {
	restaurantID, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}
	var req struct {
		TableNumber string `json:"table_number" binding:"required"`
		Capacity    int    `json:"capacity" binding:"required"`
		Location    string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Create(services.CreateTableInput{
		RestaurantID: restaurantID,
		TableNumber:  req.TableNumber,
		Capacity:     req.Capacity,
		Location:     req.Location,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> list tables, optional status/active filters
func (tc *TableController) GetAllTables(c *gin.Context) {
	restaurantID, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}
	filter := repository.TableFilter{
		RestaurantID: restaurantID,
		Status:       c.Query("status"),
		ActiveOnly:   c.Query("active") == "true",
	}
	tables, err := tc.Tables.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, ok := paramUint(c, "table_id")
	if !ok {
		return
	}
	table, err := tc.Tables.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> edit table attributes
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, ok := paramUint(c, "table_id")
	if !ok {
		return
	}
	var req struct {
		TableNumber *string `json:"table_number"`
		Capacity    *int    `json:"capacity"`
		Location    *string `json:"location"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	table, err := tc.Tables.Update(id, services.UpdateTableInput{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Location:    req.Location,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// UpdateTableStatus -> staff toggles cleaning/available
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	id, ok := paramUint(c, "table_id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	table, err := tc.Tables.SetStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// DeleteTable -> remove a table not referenced by an active booking
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, ok := paramUint(c, "table_id")
	if !ok {
		return
	}
	table, err := tc.Tables.Delete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}

// GetFloorPlan -> every table with the date's active bookings
func (tc *TableController) GetFloorPlan(c *gin.Context) {
	restaurantID, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}
	date := c.Query("date")
	if date != "" {
		if _, err := utils.ParseDate(date); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}
	plan, err := tc.Tables.FloorPlan(restaurantID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor plan", plan)
}

// GetTableStats -> per-status table counts
func (tc *TableController) GetTableStats(c *gin.Context) {
	restaurantID, ok := paramUint(c, "restaurant_id")
	if !ok {
		return
	}
	stats, err := tc.Tables.TableStats(restaurantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table stats", stats)
}
