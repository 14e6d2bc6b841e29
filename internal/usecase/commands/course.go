package commands

import (
	"context"

	"learnhub-api/internal/domain/course"
	"learnhub-api/internal/domain/user"
	reqdto "learnhub-api/internal/handler/dto/request"
	"learnhub-api/internal/infra"
	"learnhub-api/internal/infra/repository"
	"learnhub-api/internal/pkg/errs"
	"learnhub-api/internal/pkg/rescache"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound = errs.New("course not found")
	ErrCourseInvalid  = errs.New("course validation failed")
	ErrNotCourseOwner = errs.New("course belongs to another instructor")
)

type CourseCommands interface {
	Create(ctx context.Context, actor user.Principal, req reqdto.CreateCourseRequest) (*queries.CourseView, error)
	Update(ctx context.Context, actor user.Principal, id uuid.UUID, req reqdto.UpdateCourseRequest) (*queries.CourseView, error)
	Delete(ctx context.Context, actor user.Principal, id uuid.UUID) error
}

type CourseWriteStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.CourseView, error)
	Create(ctx context.Context, c *course.Course) (*queries.CourseView, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.CoursePatch) (*queries.CourseView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseCommandsImpl struct {
	store CourseWriteStore
	cache *rescache.Cache[queries.CourseView]
}

func NewCourseCommands(store CourseWriteStore, cache *rescache.Cache[queries.CourseView]) CourseCommands {
	return &courseCommandsImpl{
		store: store,
		cache: cache,
	}
}

func (c *courseCommandsImpl) Create(ctx context.Context, actor user.Principal, req reqdto.CreateCourseRequest) (*queries.CourseView, error) {
	entity, err := course.NewCourse(req.Title, req.Description, req.Category, req.PriceCents, actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrCourseInvalid)
	}

	stamp := c.cache.NextStamp()
	view, err := c.store.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	if ctx.Err() == nil {
		c.cache.Apply(stamp, *view)
	}
	return view, nil
}

func (c *courseCommandsImpl) Update(ctx context.Context, actor user.Principal, id uuid.UUID, req reqdto.UpdateCourseRequest) (*queries.CourseView, error) {
	if err := c.authorize(ctx, actor, id); err != nil {
		return nil, err
	}

	patch := repository.CoursePatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		Published:   req.Published,
	}

	stamp := c.cache.NextStamp()
	view, err := c.store.Update(ctx, id, patch)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCourseNotFound)
		}
		return nil, err
	}

	if ctx.Err() == nil {
		c.cache.Apply(stamp, *view)
	}
	return view, nil
}

func (c *courseCommandsImpl) Delete(ctx context.Context, actor user.Principal, id uuid.UUID) error {
	if err := c.authorize(ctx, actor, id); err != nil {
		return err
	}

	stamp := c.cache.NextStamp()
	if err := c.store.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCourseNotFound)
		}
		return err
	}

	if ctx.Err() == nil {
		c.cache.Remove(stamp, id)
	}
	return nil
}

// Admins may touch any course; instructors only their own.
func (c *courseCommandsImpl) authorize(ctx context.Context, actor user.Principal, id uuid.UUID) error {
	if actor.Role == user.RoleAdmin {
		return nil
	}

	view, err := c.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCourseNotFound)
		}
		return err
	}
	if view.InstructorID != actor.ID {
		return ErrNotCourseOwner
	}
	return nil
}
