package sessionsrepobridge

import (
	"context"
	"net/http"

	"github.com/taskflow/taskflow/bridge/scaffolding/errs"
	"github.com/taskflow/taskflow/bridge/scaffolding/respond"
	"github.com/taskflow/taskflow/infrastructure/web"
)

func (b *bridge) httpListByTask(ctx context.Context, r *http.Request) web.Encoder {
	taskID := web.QueryParam(r, "taskId")

	sessions, err := b.sessionRepository.ListByTask(ctx, taskID)
	if err != nil {
		return errs.Newf(errs.InternalOnlyLog, "list sessions: %s", err)
	}

	return web.NewJSONResponse(MarshalListToBridge(sessions))
}

func (b *bridge) httpStart(ctx context.Context, r *http.Request) web.Encoder {
	var input StartSessionInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	session, err := b.sessionRepository.Start(ctx, MarshalStartToRepository(input))
	if err != nil {
		return errs.Newf(errs.InternalOnlyLog, "start session: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(session))
}

// httpUpdate dispatches on the presence of the endTime key: with it the
// session is ended, without it the non-time fields are replaced. Both paths
// answer the same message shape.
func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	var input UpdateSessionInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	if input.IsEnd() {
		if err := b.sessionRepository.End(ctx, input.ID); err != nil {
			return errs.Newf(errs.InternalOnlyLog, "end session: %s", err)
		}
		return respond.NewMessageID("Session updated", input.ID)
	}

	if err := b.sessionRepository.Update(ctx, input.ID, MarshalUpdateToRepository(input)); err != nil {
		return errs.Newf(errs.InternalOnlyLog, "update session: %s", err)
	}

	return respond.NewMessageID("Session updated", input.ID)
}

// httpPreflight exists so OPTIONS requests reach the CORS middleware.
func (b *bridge) httpPreflight(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewNoResponse()
}
