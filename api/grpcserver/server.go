package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "vex/api/exchangepb"
	"vex/domain/exchange"
	"vex/service"
)

// Server adapts ExchangeService to gRPC.
type Server struct {
	pb.UnimplementedExchangeServer
	svc *service.ExchangeService
}

func NewServer(svc *service.ExchangeService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) Deposit(
	ctx context.Context,
	req *pb.DepositRequest,
) (*pb.DepositResponse, error) {
	ev, err := s.svc.Deposit(
		exchange.Token(req.Token),
		exchange.Account(req.User),
		req.Amount,
	)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DepositResponse{Balance: ev.Balance}, nil
}

func (s *Server) Withdraw(
	ctx context.Context,
	req *pb.WithdrawRequest,
) (*pb.WithdrawResponse, error) {
	ev, err := s.svc.Withdraw(
		exchange.Token(req.Token),
		exchange.Account(req.User),
		req.Amount,
	)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.WithdrawResponse{Balance: ev.Balance}, nil
}

func (s *Server) MakeOrder(
	ctx context.Context,
	req *pb.MakeOrderRequest,
) (*pb.MakeOrderResponse, error) {
	ev, err := s.svc.MakeOrder(
		exchange.Account(req.User),
		exchange.Token(req.TokenGet),
		req.AmountGet,
		exchange.Token(req.TokenGive),
		req.AmountGive,
	)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MakeOrderResponse{Id: ev.ID}, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	if _, err := s.svc.CancelOrder(req.Id, exchange.Account(req.User)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.CancelOrderResponse{}, nil
}

func (s *Server) FillOrder(
	ctx context.Context,
	req *pb.FillOrderRequest,
) (*pb.FillOrderResponse, error) {
	if _, err := s.svc.FillOrder(req.Id, exchange.Account(req.User)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.FillOrderResponse{}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetBalance(
	ctx context.Context,
	req *pb.BalanceRequest,
) (*pb.BalanceResponse, error) {
	token := exchange.Token(req.Token)
	user := exchange.Account(req.User)

	return &pb.BalanceResponse{
		Available: s.svc.BalanceOf(token, user),
		Reserved:  s.svc.Reserved(token, user),
	}, nil
}

func (s *Server) GetOrder(
	ctx context.Context,
	req *pb.GetOrderRequest,
) (*pb.GetOrderResponse, error) {
	o, ok := s.svc.Order(req.Id)
	if !ok {
		return nil, toStatus(exchange.ErrOrderNotFound)
	}

	return &pb.GetOrderResponse{
		Order: &pb.Order{
			Id:         o.ID,
			User:       string(o.Owner),
			TokenGet:   string(o.TokenGet),
			AmountGet:  o.AmountGet,
			TokenGive:  string(o.TokenGive),
			AmountGive: o.AmountGive,
			Timestamp:  o.CreatedAt,
		},
		Canceled: s.svc.IsCanceled(req.Id),
		Filled:   s.svc.IsFilled(req.Id),
	}, nil
}

func (s *Server) OrderCount(
	ctx context.Context,
	req *pb.OrderCountRequest,
) (*pb.OrderCountResponse, error) {
	return &pb.OrderCountResponse{Count: s.svc.OrderCount()}, nil
}

// -------------------- Error mapping --------------------

func toStatus(err error) error {
	switch {
	case errors.Is(err, exchange.ErrOrderNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, exchange.ErrNotAuthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, exchange.ErrZeroAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, exchange.ErrInsufficientBalance),
		errors.Is(err, exchange.ErrTransferRejected),
		errors.Is(err, exchange.ErrAlreadyCanceled),
		errors.Is(err, exchange.ErrAlreadyFilled),
		errors.Is(err, exchange.ErrOrderCanceled),
		errors.Is(err, exchange.ErrSelfFill):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
