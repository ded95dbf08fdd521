package company

import (
	"context"
	"encoding/json"
	"time"

	companyerrors "paydesk/internal/company/errors"
	"paydesk/internal/payrollapi"
	"paydesk/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const companyListKey = "companies:list"

// Lister is the slice of the remote gateway this service needs.
type Lister interface {
	ListCompanies(ctx context.Context) ([]payrollapi.Company, error)
}

type Service interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (Company, error)
}

type service struct {
	gateway Lister
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(gateway Lister, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{
		gateway: gateway,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) List(ctx context.Context) ([]CompanyResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, companyListKey).Result(); err == nil {
			var resp []CompanyResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight so a burst of selectors opening the form at once produces
	// a single upstream fetch.
	v, err, _ := s.sf.Do(companyListKey, func() (interface{}, error) {
		companies, err := s.gateway.ListCompanies(ctx)
		if err != nil {
			s.logger.Error("list companies failed", zap.String("request_id", rid), zap.Error(err))
			return nil, companyerrors.ErrCompanyFetchFailed
		}

		resp := make([]CompanyResponse, 0, len(companies))
		for _, c := range companies {
			resp = append(resp, mapToResponse(fromWire(c)))
		}

		// Company master data moves slowly, an hour of staleness is fine.
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, companyListKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]CompanyResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (Company, error) {
	companies, err := s.gateway.ListCompanies(ctx)
	if err != nil {
		s.logger.Error("get company failed", zap.String("company_id", id), zap.Error(err))
		return Company{}, companyerrors.ErrCompanyFetchFailed
	}

	for _, c := range companies {
		if c.ID == id {
			return fromWire(c), nil
		}
	}
	return Company{}, companyerrors.ErrCompanyNotFound
}
