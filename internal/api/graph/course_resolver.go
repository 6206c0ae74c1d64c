package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils"
	"context"

	"github.com/graph-gophers/graphql-go"
)

type (
	courseInput struct {
		Title       string
		Description *string
		ImageURL    *string
		Level       *string
		CuisineType *string
	}

	lessonInput struct {
		Title           string
		Content         *string
		VideoURL        *string
		DurationMinutes *int32
	}
)

func (r *Resolver) CreateCourse(ctx context.Context, args struct{ Input courseInput }) (*courseView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.CourseRequest{
		Title:       args.Input.Title,
		Description: stringValue(args.Input.Description),
		ImageURL:    stringValue(args.Input.ImageURL),
		Level:       stringValue(args.Input.Level),
		CuisineType: stringValue(args.Input.CuisineType),
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.courses.CreateCourse(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toCourseView(res), nil
}

func (r *Resolver) AddLesson(ctx context.Context, args struct {
	CourseID graphql.ID
	Input    lessonInput
}) (*courseView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.LessonRequest{
		Title:           args.Input.Title,
		Content:         stringValue(args.Input.Content),
		VideoURL:        stringValue(args.Input.VideoURL),
		DurationMinutes: intValue(args.Input.DurationMinutes),
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.courses.AddLesson(ctx, userID, string(args.CourseID), req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toCourseView(res), nil
}

func (r *Resolver) PublishCourse(ctx context.Context, args struct{ ID graphql.ID }) (*courseView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.courses.PublishCourse(ctx, userID, string(args.ID))
	if err != nil {
		return nil, wrapError(err)
	}
	return toCourseView(res), nil
}

func (r *Resolver) Courses(ctx context.Context, args pageArgs) (*coursePageView, error) {
	courses, total, err := r.courses.Courses(ctx, toPage(args.Offset, args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return &coursePageView{Courses: toCourseViews(courses), Total: int32(total)}, nil
}

func (r *Resolver) Course(ctx context.Context, args struct{ ID graphql.ID }) (*courseView, error) {
	res, err := r.courses.Course(ctx, string(args.ID), reqctx.ViewerID(ctx))
	if err != nil {
		return nil, wrapError(err)
	}
	return toCourseView(res), nil
}

func (r *Resolver) MyCourses(ctx context.Context) ([]*courseView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.courses.MyCourses(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return toCourseViews(res), nil
}

func (r *Resolver) EnrollCourse(ctx context.Context, args struct{ CourseID graphql.ID }) (*enrollmentView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.courses.EnrollCourse(ctx, userID, string(args.CourseID))
	if err != nil {
		return nil, wrapError(err)
	}
	return toEnrollmentView(res), nil
}

func (r *Resolver) CompleteLesson(ctx context.Context, args struct {
	CourseID graphql.ID
	LessonID graphql.ID
}) (*enrollmentView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.courses.CompleteLesson(ctx, userID, string(args.CourseID), string(args.LessonID))
	if err != nil {
		return nil, wrapError(err)
	}
	return toEnrollmentView(res), nil
}

func (r *Resolver) MyEnrollments(ctx context.Context) ([]*enrollmentView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.courses.MyEnrollments(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]*enrollmentView, 0, len(res))
	for _, e := range res {
		out = append(out, toEnrollmentView(e))
	}
	return out, nil
}
