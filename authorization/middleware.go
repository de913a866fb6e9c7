package authorization

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/casbin/casbin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
	errs "github.com/tasfia236/TravelTourismServer/errors"
)

type contextKey string

const claimsKey contextKey = "claims"

// NewEnforcer loads the role→permission policy consulted after the store
// role lookup.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcerSafe(modelPath, policyPath)
}

// AccessControl gates protected routes: VerifyToken authenticates the
// bearer token, RequireAdmin/RequireTourGuide authorize against the role
// stored in the users collection. Every authorization check pays one
// database read, there is no role caching.
type AccessControl struct {
	users    domain.UserStore
	enforcer *casbin.Enforcer
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewAccessControl(users domain.UserStore, enforcer *casbin.Enforcer, tracer trace.Tracer, logger *logrus.Logger) *AccessControl {
	return &AccessControl{
		users:    users,
		enforcer: enforcer,
		tracer:   tracer,
		logger:   logger,
	}
}

func ClaimsFromContext(ctx context.Context) (domain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(domain.Claims)
	return claims, ok
}

func (ac *AccessControl) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		bearer := req.Header.Get("Authorization")
		if bearer == "" {
			writeMessage(writer, http.StatusUnauthorized, errs.UnauthorizedError)
			return
		}

		bearerToken := strings.Split(bearer, "Bearer ")
		if len(bearerToken) != 2 {
			writeMessage(writer, http.StatusUnauthorized, errs.UnauthorizedError)
			return
		}

		claims, err := VerifyJWT(bearerToken[1])
		if err != nil {
			ac.logger.WithError(err).Warn("rejected token")
			writeMessage(writer, http.StatusUnauthorized, errs.UnauthorizedError)
			return
		}

		ctx := context.WithValue(req.Context(), claimsKey, *claims)
		next.ServeHTTP(writer, req.WithContext(ctx))
	})
}

func (ac *AccessControl) RequireAdmin(next http.Handler) http.Handler {
	return ac.require("users", "manage", next)
}

func (ac *AccessControl) RequireTourGuide(next http.Handler) http.Handler {
	return ac.require("bookings", "decide", next)
}

func (ac *AccessControl) require(obj, act string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		ctx, span := ac.tracer.Start(req.Context(), "AccessControl.require")
		defer span.End()

		claims, ok := ClaimsFromContext(ctx)
		if !ok {
			writeMessage(writer, http.StatusUnauthorized, errs.UnauthorizedError)
			return
		}

		user, err := ac.users.GetByEmail(ctx, claims.Email)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			http.Error(writer, err.Error(), http.StatusInternalServerError)
			return
		}
		if user == nil {
			writeMessage(writer, http.StatusForbidden, errs.ForbiddenError)
			return
		}

		res, err := ac.enforcer.EnforceSafe(string(user.Role), obj, act)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			ac.logger.WithError(err).Error("error enforcing authorization policy")
			http.Error(writer, err.Error(), http.StatusInternalServerError)
			return
		}
		if !res {
			ac.logger.WithFields(logrus.Fields{"email": claims.Email, "role": user.Role}).Warn("forbidden access attempt")
			writeMessage(writer, http.StatusForbidden, errs.ForbiddenError)
			return
		}

		next.ServeHTTP(writer, req.WithContext(ctx))
	})
}

func writeMessage(writer http.ResponseWriter, status int, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]string{"message": message})
}
