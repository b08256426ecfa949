// Package api composes the domain coordinators and the session provider into
// the daemon service the RPC transport dispatches to. Every write resolves
// the active session first; a locked daemon fails fast without touching the
// ledger.
package api

import (
	"context"
	"log/slog"

	campaignmodel "tradehub/go-backend/internal/domains/campaign/model"
	campaignusecase "tradehub/go-backend/internal/domains/campaign/usecase"
	shippingmodel "tradehub/go-backend/internal/domains/shipping/model"
	shippingusecase "tradehub/go-backend/internal/domains/shipping/usecase"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/platform/fixedpoint"
	"tradehub/go-backend/internal/session"
)

type Service struct {
	campaigns *campaignusecase.Coordinator
	shipping  *shippingusecase.Coordinator
	sessions  session.Provider
}

func NewService(client ledger.Client, sessions session.Provider, log *slog.Logger) *Service {
	campaigns := campaignusecase.New(client, log)
	shipping := shippingusecase.New(client, log)
	shipping.ListCampaigns = campaigns.ListCampaigns
	return &Service{
		campaigns: campaigns,
		shipping:  shipping,
		sessions:  sessions,
	}
}

// SetFees overrides the default write fee policy on both coordinators.
func (s *Service) SetFees(fees ledger.FeePolicy) {
	s.campaigns.Fees = fees
	s.shipping.Fees = fees
}

func (s *Service) CreateProductCampaign(ctx context.Context, draft campaignmodel.ProductDraft) (campaignusecase.CreateResult, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return campaignusecase.CreateResult{}, err
	}
	return s.campaigns.CreateProduct(ctx, sess, draft)
}

func (s *Service) CreateContainerCampaign(ctx context.Context, draft campaignmodel.ContainerDraft) (campaignusecase.CreateResult, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return campaignusecase.CreateResult{}, err
	}
	return s.campaigns.CreateContainer(ctx, sess, draft)
}

func (s *Service) ListCampaigns(ctx context.Context) ([]campaignmodel.Campaign, error) {
	return s.campaigns.ListCampaigns(ctx)
}

func (s *Service) GetCampaign(ctx context.Context, id uint64) (campaignmodel.Campaign, error) {
	return s.campaigns.GetCampaign(ctx, id)
}

func (s *Service) GetContainerRequirements(ctx context.Context, id uint64) (campaignmodel.ContainerRequirements, error) {
	return s.campaigns.ContainerRequirements(ctx, id)
}

func (s *Service) JoinProductCampaign(ctx context.Context, id, quantity uint64, shippingAddress, pricePerUnit string) (campaignusecase.JoinResult, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return campaignusecase.JoinResult{}, err
	}
	return s.campaigns.JoinProduct(ctx, sess, id, quantity, shippingAddress, pricePerUnit)
}

func (s *Service) JoinContainerCampaign(ctx context.Context, id uint64, paymentAmount string, weightKg uint64, shippingAddress string) (campaignusecase.JoinResult, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return campaignusecase.JoinResult{}, err
	}
	return s.campaigns.JoinContainer(ctx, sess, id, paymentAmount, weightKg, shippingAddress)
}

func (s *Service) CancelCampaign(ctx context.Context, id uint64) (*ledger.Receipt, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return nil, err
	}
	return s.campaigns.Cancel(ctx, sess, id)
}

func (s *Service) ApprovalStatus(ctx context.Context) (bool, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return false, err
	}
	return s.campaigns.CheckApproval(ctx, sess)
}

func (s *Service) Approve(ctx context.Context) (campaignusecase.ApprovalResult, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return campaignusecase.ApprovalResult{}, err
	}
	return s.campaigns.ApproveIfNeeded(ctx, sess)
}

func (s *Service) CreateRoute(ctx context.Context, draft shippingmodel.RouteDraft) (shippingusecase.CreateResult, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return shippingusecase.CreateResult{}, err
	}
	return s.shipping.CreateRoute(ctx, sess, draft)
}

func (s *Service) ListActiveRoutes(ctx context.Context) ([]shippingmodel.Route, error) {
	return s.shipping.ListActiveRoutes(ctx)
}

func (s *Service) GetRoute(ctx context.Context, id uint64) (shippingmodel.Route, error) {
	return s.shipping.GetRoute(ctx, id)
}

func (s *Service) AssignCampaign(ctx context.Context, draft shippingmodel.AssignmentDraft) (*ledger.Receipt, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return nil, err
	}
	return s.shipping.Assign(ctx, sess, draft)
}

func (s *Service) UpdateRouteStatus(ctx context.Context, id uint64, status shippingmodel.RouteStatus, location string) (*ledger.Receipt, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return nil, err
	}
	return s.shipping.UpdateStatus(ctx, sess, id, status, location)
}

func (s *Service) MarkPortVisited(ctx context.Context, routeID, portIndex uint64) (*ledger.Receipt, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return nil, err
	}
	return s.shipping.MarkPortVisited(ctx, sess, routeID, portIndex)
}

func (s *Service) CompleteRoute(ctx context.Context, id uint64) (*ledger.Receipt, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return nil, err
	}
	return s.shipping.Complete(ctx, sess, id)
}

func (s *Service) AssignableCampaigns(ctx context.Context) ([]campaignmodel.Campaign, error) {
	return s.shipping.AssignableCampaigns(ctx)
}

func (s *Service) ActiveAddress() (string, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return "", err
	}
	return sess.Address, nil
}

func (s *Service) Balance(ctx context.Context) (string, error) {
	sess, err := s.sessions.Active()
	if err != nil {
		return "", err
	}
	balance, err := s.sessions.Balance(ctx, sess.Address)
	if err != nil {
		return "", err
	}
	return fixedpoint.Format(balance), nil
}
