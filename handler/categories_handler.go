package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func CreateCategoryHandler(c *gin.Context, categories *usecase.CategoriesService) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Category name is required")
		return
	}

	category, err := categories.CreateCategory(c.Request.Context(), c.GetString("user_id"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicateCategory):
			utils.Conflict(c, "A category with this name already exists")
		case errors.Is(err, model.ErrInvalidInput):
			utils.BadRequest(c, err.Error())
		default:
			utils.TrackError("categories", "create_failed")
			utils.InternalError(c, "Failed to create category")
		}
		return
	}

	utils.Created(c, "Category created", gin.H{
		"category": dto.ToCategoryResponse(category),
	})
}

func ListCategoriesHandler(c *gin.Context, categories *usecase.CategoriesService) {
	list, err := categories.ListCategories(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.TrackError("categories", "list_failed")
		utils.InternalError(c, "Failed to list categories")
		return
	}

	utils.Success(c, gin.H{"categories": dto.ToCategoryResponses(list)})
}

func GetCategoryHandler(c *gin.Context, categories *usecase.CategoriesService) {
	category, err := categories.GetCategory(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.TrackError("categories", "get_failed")
		utils.InternalError(c, "Failed to load category")
		return
	}

	utils.Success(c, gin.H{"category": dto.ToCategoryResponse(category)})
}

func UpdateCategoryHandler(c *gin.Context, categories *usecase.CategoriesService) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Category name is required")
		return
	}

	category, err := categories.RenameCategory(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			utils.NotFound(c, "Category not found")
		case errors.Is(err, model.ErrDuplicateCategory):
			utils.Conflict(c, "A category with this name already exists")
		case errors.Is(err, model.ErrInvalidInput):
			utils.BadRequest(c, err.Error())
		default:
			utils.TrackError("categories", "update_failed")
			utils.InternalError(c, "Failed to update category")
		}
		return
	}

	utils.Success(c, gin.H{"category": dto.ToCategoryResponse(category)})
}

func DeleteCategoryHandler(c *gin.Context, categories *usecase.CategoriesService) {
	err := categories.DeleteCategory(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.TrackError("categories", "delete_failed")
		utils.InternalError(c, "Failed to delete category")
		return
	}

	utils.Success(c, gin.H{"message": "Category deleted"})
}
