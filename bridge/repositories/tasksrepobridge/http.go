package tasksrepobridge

import (
	"context"
	"net/http"

	"github.com/taskflow/taskflow/bridge/scaffolding/errs"
	"github.com/taskflow/taskflow/bridge/scaffolding/respond"
	"github.com/taskflow/taskflow/infrastructure/web"
)

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.taskRepository.List(ctx)
	if err != nil {
		return errs.Newf(errs.InternalOnlyLog, "list tasks: %s", err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	createTask, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.taskRepository.Create(ctx, createTask)
	if err != nil {
		return errs.Newf(errs.InternalOnlyLog, "create task: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	updateTask, err := MarshalUpdateToRepository(input)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.taskRepository.Update(ctx, input.ID, updateTask); err != nil {
		return errs.Newf(errs.InternalOnlyLog, "update task: %s", err)
	}

	return respond.NewMessageID("Task updated", input.ID)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id := web.QueryParam(r, "id")
	if id == "" {
		return errs.Newf(errs.InvalidArgument, "id is required")
	}

	if err := b.taskRepository.Delete(ctx, id); err != nil {
		return errs.Newf(errs.InternalOnlyLog, "delete task: %s", err)
	}

	return respond.NewMessage("Task deleted")
}

// httpPreflight exists so OPTIONS requests reach the CORS middleware.
func (b *bridge) httpPreflight(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewNoResponse()
}
