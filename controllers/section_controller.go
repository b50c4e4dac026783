package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

type sectionRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductIDs   []uint `json:"product_ids"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active"`
}

// UpsertSection creates or updates a landing page section keyed by its
// title slug. Admin only.
func UpsertSection(c *gin.Context) {
	utils.LogInfo("UpsertSection called")

	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	sectionSlug := slug.Make(req.Title)

	var section models.Section
	err := config.DB.Where("slug = ?", sectionSlug).First(&section).Error
	if err != nil {
		section = models.Section{
			Title:        req.Title,
			Slug:         sectionSlug,
			Description:  req.Description,
			Image:        req.Image,
			ProductIDs:   req.ProductIDs,
			DisplayOrder: req.DisplayOrder,
			Active:       active,
		}
		err = config.DB.Create(&section).Error
	} else {
		section.Title = req.Title
		section.Description = req.Description
		section.Image = req.Image
		section.ProductIDs = req.ProductIDs
		section.DisplayOrder = req.DisplayOrder
		section.Active = active
		err = config.DB.Save(&section).Error
	}
	if err != nil {
		utils.LogError("Failed to save section %q: %v", sectionSlug, err)
		utils.InternalServerError(c, "Failed to save section", err.Error())
		return
	}
	utils.LogInfo("Saved section ID: %d", section.ID)

	utils.Success(c, "Section saved", gin.H{"section": section})
}

// ListSections returns active sections in display order with their
// products populated.
func ListSections(c *gin.Context) {
	utils.LogDebug("ListSections called")

	var sections []models.Section
	if err := config.DB.Where("active = ?", true).
		Order("display_order ASC").Find(&sections).Error; err != nil {
		utils.LogError("Failed to fetch sections: %v", err)
		utils.InternalServerError(c, "Failed to fetch sections", err.Error())
		return
	}

	payload := make([]gin.H, 0, len(sections))
	for _, section := range sections {
		var products []models.Product
		if len(section.ProductIDs) > 0 {
			if err := config.DB.Where("id IN ?", section.ProductIDs).
				Find(&products).Error; err != nil {
				utils.LogError("Failed to fetch products for section ID: %d: %v", section.ID, err)
			}
		}
		payload = append(payload, gin.H{
			"section":  section,
			"products": products,
		})
	}

	utils.Success(c, "Sections retrieved successfully", gin.H{"sections": payload})
}

// AdminListSections returns every section, active or not. Admin only.
func AdminListSections(c *gin.Context) {
	utils.LogDebug("AdminListSections called")

	var sections []models.Section
	if err := config.DB.Order("display_order ASC").Find(&sections).Error; err != nil {
		utils.LogError("Failed to fetch sections: %v", err)
		utils.InternalServerError(c, "Failed to fetch sections", err.Error())
		return
	}

	utils.Success(c, "Sections retrieved successfully", gin.H{"sections": sections})
}

// DeleteSection removes a section. Admin only.
func DeleteSection(c *gin.Context) {
	utils.LogInfo("DeleteSection called")

	sectionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid section ID", nil)
		return
	}

	var section models.Section
	if err := config.DB.First(&section, sectionID).Error; err != nil {
		utils.NotFound(c, "Section not found")
		return
	}

	if err := config.DB.Delete(&section).Error; err != nil {
		utils.LogError("Failed to delete section ID: %d: %v", section.ID, err)
		utils.InternalServerError(c, "Failed to delete section", err.Error())
		return
	}
	utils.LogInfo("Deleted section ID: %d", section.ID)

	utils.Success(c, "Section removed", nil)
}
