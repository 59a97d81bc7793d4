package events

const (
	CatalogExchange = "company.catalog"
)

const (
	CategoryCreatedEvent = "category.created"
	CategoryUpdatedEvent = "category.updated"
	CategoryDeletedEvent = "category.deleted"
	ProductCreatedEvent  = "product.created"
	ProductUpdatedEvent  = "product.updated"
	ProductDeletedEvent  = "product.deleted"
	ClientCreatedEvent   = "client.created"
	ClientUpdatedEvent   = "client.updated"
	ClientDeletedEvent   = "client.deleted"
	SettingsUpdatedEvent = "settings.updated"
)

const (
	EventVersionV1 = "v1"
)

type DeletedPayload struct {
	ID int64 `json:"id"`
}
