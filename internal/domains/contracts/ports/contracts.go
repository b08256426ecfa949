// Package ports declares the transport-neutral contracts the RPC surface is
// built against. The api service implements them; transports depend only on
// these interfaces.
package ports

import (
	"context"

	campaignmodel "tradehub/go-backend/internal/domains/campaign/model"
	campaignusecase "tradehub/go-backend/internal/domains/campaign/usecase"
	shippingmodel "tradehub/go-backend/internal/domains/shipping/model"
	shippingusecase "tradehub/go-backend/internal/domains/shipping/usecase"
	"tradehub/go-backend/internal/ledger"
)

// CampaignAPI is a transport-neutral group-purchasing contract.
type CampaignAPI interface {
	CreateProductCampaign(ctx context.Context, draft campaignmodel.ProductDraft) (campaignusecase.CreateResult, error)
	CreateContainerCampaign(ctx context.Context, draft campaignmodel.ContainerDraft) (campaignusecase.CreateResult, error)
	ListCampaigns(ctx context.Context) ([]campaignmodel.Campaign, error)
	GetCampaign(ctx context.Context, id uint64) (campaignmodel.Campaign, error)
	GetContainerRequirements(ctx context.Context, id uint64) (campaignmodel.ContainerRequirements, error)
	JoinProductCampaign(ctx context.Context, id, quantity uint64, shippingAddress, pricePerUnit string) (campaignusecase.JoinResult, error)
	JoinContainerCampaign(ctx context.Context, id uint64, paymentAmount string, weightKg uint64, shippingAddress string) (campaignusecase.JoinResult, error)
	CancelCampaign(ctx context.Context, id uint64) (*ledger.Receipt, error)
	ApprovalStatus(ctx context.Context) (bool, error)
	Approve(ctx context.Context) (campaignusecase.ApprovalResult, error)
}

// ShippingAPI is a transport-neutral route management contract.
type ShippingAPI interface {
	CreateRoute(ctx context.Context, draft shippingmodel.RouteDraft) (shippingusecase.CreateResult, error)
	ListActiveRoutes(ctx context.Context) ([]shippingmodel.Route, error)
	GetRoute(ctx context.Context, id uint64) (shippingmodel.Route, error)
	AssignCampaign(ctx context.Context, draft shippingmodel.AssignmentDraft) (*ledger.Receipt, error)
	UpdateRouteStatus(ctx context.Context, id uint64, status shippingmodel.RouteStatus, location string) (*ledger.Receipt, error)
	MarkPortVisited(ctx context.Context, routeID, portIndex uint64) (*ledger.Receipt, error)
	CompleteRoute(ctx context.Context, id uint64) (*ledger.Receipt, error)
	AssignableCampaigns(ctx context.Context) ([]campaignmodel.Campaign, error)
}

// SessionAPI is a transport-neutral account/session contract.
type SessionAPI interface {
	ActiveAddress() (string, error)
	Balance(ctx context.Context) (string, error)
}

// DaemonService is the full surface the RPC transport dispatches to.
type DaemonService interface {
	CampaignAPI
	ShippingAPI
	SessionAPI
}
