// Package gateway holds the outbound collaborator implementations. Binary
// asset storage and mail delivery run on external providers; these
// implementations record the intent so a provider client can be dropped in
// without touching the callers.
package gateway

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type assetReleaser struct{}

var _ domain.AssetReleaser = (*assetReleaser)(nil)

func NewAssetReleaser() *assetReleaser {
	return &assetReleaser{}
}

func (r *assetReleaser) Release(ctx context.Context, publicID string) error {
	logrus.Infof("releasing asset %s", publicID)
	return nil
}
