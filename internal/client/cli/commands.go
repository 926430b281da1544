package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/teamkeeper/internal/client/client"
	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/dmitrijs2005/teamkeeper/internal/contenttypes"
	"github.com/dmitrijs2005/teamkeeper/internal/resourcetypes"
	"github.com/dmitrijs2005/teamkeeper/internal/resourcetypes/redesigned"
)

func (a *App) unlock(ctx context.Context) error {
	if a.sessionKeys.Unlocked() {
		return nil
	}
	pw, err := a.askPassphrase(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if err := a.sessionKeys.Unlock(ctx, pw); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return errors.New("wrong passphrase")
		}
		return err
	}
	return nil
}

// sync refreshes the cache from the server, falling back to the local
// snapshot when the server cannot be reached, then pushes local changes.
func (a *App) sync(ctx context.Context) error {
	if err := a.unlock(ctx); err != nil {
		return err
	}
	return a.refreshAndSave(ctx)
}

func (a *App) refreshAndSave(ctx context.Context) error {
	err := a.sessionKeys.Ping(ctx)
	if err == nil {
		err = a.sessionKeys.Fetch(ctx)
	}
	if err != nil {
		if !errors.Is(err, client.ErrUnavailable) {
			return err
		}
		a.logger.Warn(ctx, "server unavailable, using local session keys")
		found, err := a.sessionKeys.LoadLocal(ctx)
		if err != nil {
			return err
		}
		if !found {
			return client.ErrUnavailable
		}
		fmt.Fprintf(a.out, "Offline: %d session keys loaded from local cache\n", a.sessionKeys.Cache().Len())
		return nil
	}

	if err := a.sessionKeys.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d session keys in sync\n", a.sessionKeys.Cache().Len())
	return nil
}

func (a *App) put(ctx context.Context, model, id, key string) error {
	if err := a.unlock(ctx); err != nil {
		return err
	}
	if err := a.sessionKeys.Fetch(ctx); err != nil {
		return err
	}
	verb := "saved"
	if a.sessionKeys.Put(model, id, key) {
		verb = "replaced"
	}
	if err := a.sessionKeys.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Session key for %s/%s %s\n", model, id, verb)
	return nil
}

func (a *App) prune(ctx context.Context, id string) error {
	if err := a.unlock(ctx); err != nil {
		return err
	}
	if err := a.sessionKeys.Prune(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Bundle %s deleted, %d session keys left\n", id, a.sessionKeys.Cache().Len())
	return nil
}

// types lists the seeded resource types whose slug is in the named set,
// with the features each one carries.
func (a *App) types(ctx context.Context, setName string) error {
	set, err := contenttypes.SlugSet(setName)
	if err != nil {
		return err
	}
	if _, err := a.resourceTypes.Seed(ctx); err != nil {
		return err
	}
	list, err := a.resourceTypes.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range list {
		if _, ok := set[t.Slug]; !ok {
			continue
		}
		version, feats := "-", "-"
		if ct, err := contenttypes.FromSlug(t.Slug); err == nil {
			version, feats = "v4", features(ct)
			if ct.IsV5() {
				version = "v5"
			}
		}
		fmt.Fprintf(a.out, "%s  %-28s %s  %-34s %s\n", t.ID, t.Slug, version, feats, t.Name)
	}
	return nil
}

func features(ct contenttypes.ContentType) string {
	var f []string
	if ct.IsSimplePassword() {
		f = append(f, "simple")
	}
	if ct.HasPassword() {
		f = append(f, "password")
	}
	if ct.HasEncryptedDescription() {
		f = append(f, "description")
	}
	if ct.HasTotp() {
		f = append(f, "totp")
	}
	if ct.SupportsExpiry() {
		f = append(f, "expiry")
	}
	if len(f) == 0 {
		return "-"
	}
	return strings.Join(f, ",")
}

func (a *App) actions(slug string) error {
	actions, err := a.resourceTypes.Actions(slug)
	if err != nil {
		return err
	}
	for _, m := range actions {
		fmt.Fprintf(a.out, "%-14s -> %s\n", m.Action, m.NewResourceType)
	}
	return nil
}

func (a *App) transition(ctx context.Context, typeID, action string) error {
	act, err := resourcetypes.ParseUpdateAction(action)
	if err != nil {
		return err
	}
	if _, err := a.resourceTypes.Seed(ctx); err != nil {
		return err
	}
	t, err := a.resourceTypes.TypeAfterUpdate(ctx, typeID, act)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s  %s\n", t.ID, t.Slug)
	return nil
}

func (a *App) edits(slug string) error {
	actions, err := a.resourceTypes.EditActions(slug)
	if err != nil {
		return err
	}
	for _, m := range actions {
		fmt.Fprintf(a.out, "%-28s -> %s\n", m.Action, m.NewResourceType)
	}
	return nil
}

func (a *App) edit(ctx context.Context, typeID, action string) error {
	act, err := redesigned.ParseUpdateAction(action)
	if err != nil {
		return err
	}
	if _, err := a.resourceTypes.Seed(ctx); err != nil {
		return err
	}
	t, err := a.resourceTypes.TypeAfterEdit(ctx, typeID, act)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s  %s\n", t.ID, t.Slug)
	return nil
}
