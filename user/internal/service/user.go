package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/koberec/eshop/internal"
	"github.com/koberec/eshop/internal/config"
	"github.com/koberec/eshop/internal/constants"
	inOtel "github.com/koberec/eshop/internal/otel"
	"github.com/koberec/eshop/internal/repository"
	userErrors "github.com/koberec/eshop/user/internal/errors"
	"github.com/koberec/eshop/user/internal/otel"
	"github.com/koberec/eshop/user/pkg/request"
	"github.com/koberec/eshop/user/pkg/response"
)

type UserService struct {
	queries *repository.Queries
	config  config.Application
}

func NewUserService(queries *repository.Queries, config config.Application) *UserService {
	return &UserService{queries: queries, config: config}
}

func (u *UserService) Register(
	c context.Context,
	param request.Register,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "UserService Register").
		Str(constants.KEY_EMAIL, param.Email).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "checking email").Logger()
	logger.Info().Msg("checking email")
	_, err := u.queries.FindUserByEmail(c, param.Email)
	if err == nil {
		err = fmt.Errorf("failed registering user with error=%w", userErrors.ErrEmailTaken)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed checking email with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("checked email")

	logger = logger.With().Str(constants.KEY_PROCESS, "hashing password").Logger()
	logger.Info().Msg("hashing password")
	hashed, err := bcrypt.GenerateFromPassword([]byte(param.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("failed hashing password with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("hashed password")

	logger = logger.With().Str(constants.KEY_PROCESS, "inserting user").Logger()
	logger.Info().Msg("inserting user")
	user, err := u.queries.InsertUser(c, repository.InsertUserParams{
		Name:     param.Name,
		Email:    param.Email,
		Password: string(hashed),
		Role:     "customer",
	})
	if err != nil {
		err = fmt.Errorf("failed inserting user with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger = logger.With().Str(constants.KEY_USER_ID, user.ID.String()).Logger()
	logger.Info().Msg("inserted user")

	return user.Response(), nil
}

func (u *UserService) Login(
	c context.Context,
	param request.Login,
) (string, error) {
	c, span := otel.Tracer.Start(c, "UserService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "UserService Login").
		Str(constants.KEY_EMAIL, param.Email).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding user by email").Logger()
	logger.Info().Msg("finding user by email")
	user, err := u.queries.FindUserByEmail(c, param.Email)
	if err != nil {
		err = fmt.Errorf("failed finding user by email with error=%w", userErrors.ErrUserNotFound)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("found user by email")

	logger = logger.With().Str(constants.KEY_PROCESS, "verifying password").Logger()
	logger.Info().Msg("verifying password")
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(param.Password))
	if err != nil {
		err = fmt.Errorf("failed verifying password with error=%w", userErrors.ErrPasswordMismatch)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("verified password")

	logger = logger.With().Str(constants.KEY_PROCESS, "creating login token").Logger()
	logger.Info().Msg("creating login token")
	now := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		internal.Claims{
			Role: user.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				Audience:  jwt.ClaimStrings{constants.AUDIENCE_USER},
				Issuer:    constants.APP_USER_SERVICE,
				Subject:   user.ID.String(),
				ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
				IssuedAt:  jwt.NewNumericDate(now),
			},
		},
	)
	signedToken, err := token.SignedString([]byte(u.config.SecretKey))
	if err != nil {
		err = fmt.Errorf("failed signing token with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("created login token")

	return signedToken, nil
}

func (u *UserService) FindUserById(
	c context.Context,
	userId uuid.UUID,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService FindUserById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "UserService FindUserById").
		Str(constants.KEY_USER_ID, userId.String()).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding user").Logger()
	logger.Info().Msg("finding user")
	user, err := u.queries.FindUserById(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding user with error=%w", userErrors.ErrUserNotFound)
		} else {
			err = fmt.Errorf("failed finding user with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("found user")

	return user.Response(), nil
}
