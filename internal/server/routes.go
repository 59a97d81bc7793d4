package server

import (
	"blessindo/app/auth"
	"blessindo/app/category"
	"blessindo/app/client"
	"blessindo/app/dashboard"
	"blessindo/app/product"
	"blessindo/app/setting"
	"blessindo/app/upload"
	"blessindo/internal/middleware"
	"blessindo/pkg/storage"
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func registerRoutes(app *fiber.App, deps Deps) {
	repo := deps.Repository
	publisher := deps.EventPublisher
	images := deps.Images

	loginHandler := auth.NewLoginHandler(deps.Credentials, deps.Tokens)

	getCategoriesHandler := category.NewGetCategoriesHandler(repo)
	createCategoryHandler := category.NewCreateCategoryHandler(repo, publisher)
	updateCategoryHandler := category.NewUpdateCategoryHandler(repo, publisher)
	deleteCategoryHandler := category.NewDeleteCategoryHandler(repo, publisher)

	getProductsHandler := product.NewGetProductsHandler(repo)
	getProductHandler := product.NewGetProductHandler(repo)
	createProductHandler := product.NewCreateProductHandler(repo, publisher)
	updateProductHandler := product.NewUpdateProductHandler(repo, images, publisher)
	deleteProductHandler := product.NewDeleteProductHandler(repo, images, publisher)
	uploadProductImageHandler := upload.NewUploadImageHandler(images, upload.ProductImage)

	getSettingsHandler := setting.NewGetSettingsHandler(repo)
	updateSettingsHandler := setting.NewUpdateSettingsHandler(repo, publisher)

	getClientsHandler := client.NewGetClientsHandler(repo)
	getPublicClientsHandler := client.NewGetPublicClientsHandler(repo)
	createClientHandler := client.NewCreateClientHandler(repo, publisher)
	updateClientHandler := client.NewUpdateClientHandler(repo, images, publisher)
	deleteClientHandler := client.NewDeleteClientHandler(repo, images, publisher)
	uploadClientLogoHandler := upload.NewUploadImageHandler(images, upload.ClientLogo)

	getStatsHandler := dashboard.NewGetStatsHandler(repo)

	admin := middleware.NewAdminAuthMiddleware(deps.Tokens)

	app.Get(storage.URLPrefix+":name", serveUpload(images))

	api := app.Group(deps.APIPrefix)

	api.Post("/auth/login", handle[auth.LoginRequest, auth.LoginResponse](loginHandler, "Login successful"))

	api.Get("/categories", handle[category.GetCategoriesRequest, category.GetCategoriesResponse](getCategoriesHandler, "Categories retrieved successfully"))
	api.Post("/categories", admin, handle[category.CreateCategoryRequest, category.CreateCategoryResponse](createCategoryHandler, "Category created successfully"))
	api.Put("/categories/:id", admin, handle[category.UpdateCategoryRequest, category.UpdateCategoryResponse](updateCategoryHandler, "Category updated successfully"))
	api.Delete("/categories/:id", admin, handle[category.DeleteCategoryRequest, category.DeleteCategoryResponse](deleteCategoryHandler, "Category deleted successfully"))

	api.Get("/products", admin, handle[product.GetProductsRequest, product.GetProductsResponse](getProductsHandler, "Products retrieved successfully"))
	api.Get("/products/public", handle[product.GetProductsRequest, product.GetProductsResponse](getProductsHandler, "Products retrieved successfully"))
	api.Get("/products/public/:id", handle[product.GetProductRequest, product.GetProductResponse](getProductHandler, "Product retrieved successfully"))
	api.Post("/products/upload-image", admin, handleUpload(uploadProductImageHandler, "Image uploaded successfully"))
	api.Post("/products", admin, handle[product.CreateProductRequest, product.CreateProductResponse](createProductHandler, "Product created successfully"))
	api.Put("/products/:id", admin, handle[product.UpdateProductRequest, product.UpdateProductResponse](updateProductHandler, "Product updated successfully"))
	api.Delete("/products/:id", admin, handle[product.DeleteProductRequest, product.DeleteProductResponse](deleteProductHandler, "Product deleted successfully"))

	api.Get("/settings", handle[setting.GetSettingsRequest, setting.GetSettingsResponse](getSettingsHandler, "Settings retrieved successfully"))
	api.Put("/settings", admin, handle[setting.UpdateSettingsRequest, setting.UpdateSettingsResponse](updateSettingsHandler, "Settings updated successfully"))

	api.Get("/clients", admin, handle[client.GetClientsRequest, client.GetClientsResponse](getClientsHandler, "Clients retrieved successfully"))
	api.Get("/clients/public", handle[client.GetClientsRequest, client.GetClientsResponse](getPublicClientsHandler, "Active clients retrieved successfully"))
	api.Post("/clients/upload-logo", admin, handleUpload(uploadClientLogoHandler, "Logo uploaded successfully"))
	api.Post("/clients", admin, handle[client.CreateClientRequest, client.CreateClientResponse](createClientHandler, "Client created successfully"))
	api.Put("/clients/:id", admin, handle[client.UpdateClientRequest, client.UpdateClientResponse](updateClientHandler, "Client updated successfully"))
	api.Delete("/clients/:id", admin, handle[client.DeleteClientRequest, client.DeleteClientResponse](deleteClientHandler, "Client deleted successfully"))

	api.Get("/dashboard/stats", admin, handle[dashboard.GetStatsRequest, dashboard.GetStatsResponse](getStatsHandler, "Dashboard stats retrieved successfully"))
}

// serveUpload streams a stored image. Unknown names fall through to the
// route-not-found handler.
func serveUpload(images *storage.ImageStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		data, err := images.Get(name)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidKey) {
				return c.Next()
			}
			zap.L().Error("Failed to read upload", zap.String("name", name), zap.Error(err))
			return writeError(c, err)
		}
		if data == nil {
			return c.Next()
		}

		c.Type(filepath.Ext(name))
		return c.Send(data)
	}
}
