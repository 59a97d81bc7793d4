package product

import (
	"blessindo/domain"
	"blessindo/pkg/httperror"
	"blessindo/pkg/pagination"
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

type GetProductsHandler struct {
	repository Repository
}

func NewGetProductsHandler(repository Repository) *GetProductsHandler {
	return &GetProductsHandler{
		repository: repository,
	}
}

type GetProductsRequest struct {
	Page     string `query:"page"`
	Limit    string `query:"limit"`
	Category string `query:"category"`
}

type GetProductsResponse struct {
	Products   []domain.Product `json:"products"`
	Pagination pagination.Meta  `json:"pagination"`
}

func (h GetProductsHandler) Handle(ctx context.Context, req *GetProductsRequest) (*GetProductsResponse, error) {
	page := pagination.Parse(req.Page, req.Limit)

	filter, err := parseFilter(req.Category)
	if err != nil {
		return nil, httperror.BadRequest(
			"product.index.invalid_category",
			"Invalid category filter",
			err.Error(),
		)
	}

	var (
		products   []domain.Product
		totalItems int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = h.repository.GetProducts(gctx, filter, page.Limit, page.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		totalItems, err = h.repository.CountProducts(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, httperror.InternalServerError(
			"product.index.failed",
			"Failed to retrieve products",
			err.Error(),
		)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return &GetProductsResponse{
		Products:   products,
		Pagination: page.Meta(totalItems),
	}, nil
}

func parseFilter(category string) (domain.ProductFilter, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return domain.ProductFilter{}, nil
	}

	id, err := strconv.ParseInt(category, 10, 64)
	if err != nil {
		return domain.ProductFilter{}, err
	}

	return domain.ProductFilter{CategoryID: &id}, nil
}
