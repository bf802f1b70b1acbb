package notificationsrepobridge

import (
	"context"
	"net/http"

	"github.com/taskflow/taskflow/bridge/scaffolding/errs"
	"github.com/taskflow/taskflow/bridge/scaffolding/respond"
	"github.com/taskflow/taskflow/infrastructure/web"
)

func (b *bridge) httpListForUser(ctx context.Context, r *http.Request) web.Encoder {
	userID := web.QueryParam(r, "userId")
	if userID == "" {
		return errs.Newf(errs.InvalidArgument, "userId is required")
	}

	notifications, err := b.notificationRepository.ListForUser(ctx, userID)
	if err != nil {
		return errs.Newf(errs.InternalOnlyLog, "list notifications: %s", err)
	}

	return web.NewJSONResponse(MarshalListToBridge(notifications))
}

func (b *bridge) httpMarkRead(ctx context.Context, r *http.Request) web.Encoder {
	var input MarkReadInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	if err := b.notificationRepository.MarkRead(ctx, input.ID); err != nil {
		return errs.Newf(errs.InternalOnlyLog, "mark notification read: %s", err)
	}

	return respond.NewMessage("Marked as read")
}

// httpPreflight exists so OPTIONS requests reach the CORS middleware.
func (b *bridge) httpPreflight(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewNoResponse()
}
