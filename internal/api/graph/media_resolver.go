package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils"
	"context"
)

func (r *Resolver) CreateUploadUrl(ctx context.Context, args struct {
	FileName    string
	ContentType string
	Folder      string
}) (*uploadURLView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.UploadURLRequest{FileName: args.FileName, ContentType: args.ContentType, Folder: args.Folder}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.media.CreateUploadURL(ctx, req, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return &uploadURLView{
		UploadURL: res.UploadURL,
		PublicURL: res.PublicURL,
		Key:       res.Key,
		ExpiresAt: gqlTime(res.ExpiresAt),
	}, nil
}
