package usersrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskflow/taskflow/bridge/scaffolding/errs"
	"github.com/taskflow/taskflow/bridge/scaffolding/respond"
	"github.com/taskflow/taskflow/core/repositories/usersrepo"
	"github.com/taskflow/taskflow/infrastructure/web"
)

// httpAuth dispatches the account operations on the action body field.
func (b *bridge) httpAuth(ctx context.Context, r *http.Request) web.Encoder {
	var input AuthInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	switch input.Action {
	case ActionRegister:
		return b.register(ctx, input)
	case ActionLogin:
		return b.login(ctx, input)
	case ActionUpdateProfile:
		return b.updateProfile(ctx, input)
	}

	return errs.Newf(errs.InvalidArgument, "Invalid action")
}

func (b *bridge) register(ctx context.Context, input AuthInput) web.Encoder {
	if err := input.validateRegister(); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	user, err := b.userRepository.Register(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, usersrepo.ErrEmailTaken) {
			return errs.Newf(errs.AlreadyExists, "Email already exists")
		}
		return errs.Newf(errs.InternalOnlyLog, "register: %s", err)
	}

	// The account exists at this point; a failed welcome notification is
	// logged, not surfaced.
	if err := b.notificationRepository.CreateWelcome(ctx, user.ID, user.Username); err != nil {
		b.log.ErrorContext(ctx, "welcome notification failed", "user_id", user.ID, "error", err)
	}

	return web.NewJSONResponseWithStatus(respond.NewMessage("User created"), http.StatusCreated)
}

func (b *bridge) login(ctx context.Context, input AuthInput) web.Encoder {
	if err := input.validateLogin(); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	user, err := b.userRepository.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, usersrepo.ErrInvalidCredentials) {
			return errs.Newf(errs.Unauthenticated, "Invalid credentials")
		}
		return errs.Newf(errs.InternalOnlyLog, "login: %s", err)
	}

	return web.NewJSONResponse(LoginResult{
		ID:       user.ID,
		Username: user.Username,
	})
}

func (b *bridge) updateProfile(ctx context.Context, input AuthInput) web.Encoder {
	if err := input.validateUpdateProfile(); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.userRepository.UpdateProfile(ctx, input.UserID, input.Username, input.Password); err != nil {
		return errs.Newf(errs.InternalOnlyLog, "update profile: %s", err)
	}

	return respond.NewMessage("Profile updated")
}

// httpPreflight exists so OPTIONS requests reach the CORS middleware.
func (b *bridge) httpPreflight(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewNoResponse()
}
