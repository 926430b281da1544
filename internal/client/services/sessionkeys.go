// Package services contains application services for the teamkeeper client.
// This file implements the session keys service: unlocking with the user
// passphrase, fetching and merging bundles from the server, keeping an
// encrypted local snapshot and pushing local changes back.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/client/client"
	"github.com/dmitrijs2005/teamkeeper/internal/client/models"
	"github.com/dmitrijs2005/teamkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/dmitrijs2005/teamkeeper/internal/cryptox"
	"github.com/dmitrijs2005/teamkeeper/internal/dbx"
	"github.com/dmitrijs2005/teamkeeper/internal/logging"
	"github.com/dmitrijs2005/teamkeeper/internal/sessionkeys"
	"github.com/google/uuid"
)

// PassphraseCache keeps the user passphrase for a limited time.
type PassphraseCache interface {
	Set(passphrase []byte)
	Get() ([]byte, error)
	HasValid() bool
	Clear()
}

// SessionKeysService syncs the session keys cache with the server.
type SessionKeysService struct {
	client      client.Client
	db          *sql.DB
	passphrases PassphraseCache
	cache       *sessionkeys.MemoryCache
	merger      *sessionkeys.Merger
	processor   *sessionkeys.Processor
	validator   *sessionkeys.Validator
	logger      logging.Logger
	now         func() time.Time

	masterKey []byte
}

func NewSessionKeysService(c client.Client, db *sql.DB, p PassphraseCache, l logging.Logger) *SessionKeysService {
	return &SessionKeysService{
		client:      c,
		db:          db,
		passphrases: p,
		cache:       sessionkeys.NewMemoryCache(),
		merger:      sessionkeys.NewMerger(),
		processor:   sessionkeys.NewProcessor(),
		validator:   sessionkeys.NewValidator(),
		logger:      l,
		now:         time.Now,
	}
}

// localSnapshot is what gets persisted, encrypted, under
// metadata.KeySessionKeysCache.
type localSnapshot struct {
	Bundle sessionkeys.BundleDTO `json:"bundle"`
	Origin map[string]time.Time  `json:"origin"`
}

type sealedSnapshot struct {
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

func (s *SessionKeysService) metadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Cache exposes the in-memory session keys cache.
func (s *SessionKeysService) Cache() *sessionkeys.MemoryCache {
	return s.cache
}

// Unlock verifies passphrase against the locally stored verifier and caches
// it. The first unlock on a fresh database stores a new salt and verifier.
func (s *SessionKeysService) Unlock(ctx context.Context, passphrase []byte) error {
	repo := s.metadataRepo()

	salt, err := repo.Get(ctx, metadata.KeySalt)
	if err != nil {
		return err
	}
	verifier, err := repo.Get(ctx, metadata.KeyVerifier)
	if err != nil {
		return err
	}

	if salt == nil || verifier == nil {
		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		key := cryptox.DeriveMasterKey(passphrase, salt)
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			txRepo := metadata.NewSQLiteRepository(tx)
			if err := txRepo.Set(ctx, metadata.KeySalt, salt); err != nil {
				return err
			}
			return txRepo.Set(ctx, metadata.KeyVerifier, cryptox.MakeVerifier(key))
		})
		if err != nil {
			return fmt.Errorf("store unlock data: %w", err)
		}
		s.unlocked(passphrase, key)
		s.logger.Info(ctx, "unlock data initialized")
		return nil
	}

	key := cryptox.DeriveMasterKey(passphrase, salt)
	if subtle.ConstantTimeCompare(verifier, cryptox.MakeVerifier(key)) == 0 {
		common.WipeByteArray(key)
		return common.ErrorUnauthorized
	}
	s.unlocked(passphrase, key)
	return nil
}

func (s *SessionKeysService) unlocked(passphrase, key []byte) {
	common.WipeByteArray(s.masterKey)
	s.masterKey = key
	s.passphrases.Set(passphrase)
}

// Unlocked reports whether a previous Unlock is still in effect, i.e. the
// master key is known and the passphrase has not expired.
func (s *SessionKeysService) Unlocked() bool {
	return s.masterKey != nil && s.passphrases.HasValid()
}

// Lock forgets the passphrase, the master key and the cached session keys.
func (s *SessionKeysService) Lock() {
	s.passphrases.Clear()
	common.WipeByteArray(s.masterKey)
	s.masterKey = nil
	s.cache.Clear()
}

// Ping checks that the server answers.
func (s *SessionKeysService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Prune deletes bundle id on the server and rebuilds the cache from the
// bundles that are left.
func (s *SessionKeysService) Prune(ctx context.Context, id string) error {
	if !s.Unlocked() {
		return common.ErrPassphraseNotInCache
	}
	if err := s.client.DeleteSessionKeys(ctx, id); err != nil {
		return fmt.Errorf("delete session keys %s: %w", id, err)
	}
	s.logger.Info(ctx, "session keys bundle deleted", "id", id)
	return s.Fetch(ctx)
}

// Fetch downloads every bundle, merges the readable ones and loads the
// result into the cache.
func (s *SessionKeysService) Fetch(ctx context.Context) error {
	bundles, err := s.client.ListSessionKeys(ctx)
	if err != nil {
		return fmt.Errorf("list session keys: %w", err)
	}

	passphrase, err := s.passphrases.Get()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	s.logger.Debug(ctx, "building session keys cache", "bundles", len(bundles))
	merged := s.merger.Merge(s.decryptAll(ctx, passphrase, bundles))
	s.cache.Load(merged)
	s.logger.Info(ctx, "session keys cache loaded", "keys", len(merged.Keys), "origins", len(merged.OriginMetadata))

	return s.persist(ctx)
}

// decryptAll opens and validates bundles. Bundles that fail any step are
// logged and left out.
func (s *SessionKeysService) decryptAll(ctx context.Context, passphrase []byte, bundles []*models.SessionKeysBundle) []sessionkeys.DecryptedBundle {
	out := make([]sessionkeys.DecryptedBundle, 0, len(bundles))
	for _, b := range bundles {
		id, err := uuid.Parse(b.ID)
		if err != nil {
			s.logger.Warn(ctx, "skipping bundle with invalid id", "id", b.ID)
			continue
		}

		plain, err := cryptox.OpenArmored(passphrase, b.Data)
		if err != nil {
			s.logger.Warn(ctx, "error decrypting session keys bundle", "id", b.ID, "error", err)
			continue
		}

		var dto sessionkeys.BundleDTO
		err = json.Unmarshal(plain, &dto)
		common.WipeByteArray(plain)
		if err != nil {
			s.logger.Warn(ctx, "error decoding session keys bundle", "id", b.ID, "error", err)
			continue
		}

		if !s.validator.IsValid(dto) {
			s.logger.Warn(ctx, "invalid session keys bundle", "id", b.ID)
			continue
		}

		out = append(out, sessionkeys.DecryptedBundle{
			ID:       id,
			Created:  b.Created,
			Modified: b.Modified,
			Bundle:   s.processor.PostFetch(dto),
		})
	}
	return out
}

// Put records a session key obtained locally, e.g. after decrypting a
// resource. It reports whether a key for the same object was already cached.
func (s *SessionKeysService) Put(foreignModel, foreignID, sessionKey string) bool {
	id := sessionkeys.Identifier{ForeignModel: foreignModel, ForeignID: foreignID}
	_, replaced := s.cache.Get(id)
	s.cache.Put(id, sessionKey, s.now().UTC())
	return replaced
}

// Save pushes the cache to the server. A cache built from no bundle is
// posted as a new bundle, a locally modified one updates the latest origin
// bundle. Server failures other than an authorization failure are logged
// and do not fail the call.
func (s *SessionKeysService) Save(ctx context.Context) error {
	passphrase, err := s.passphrases.Get()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	switch {
	case s.cache.WasInitialCacheEmpty():
		s.logger.Debug(ctx, "no origin bundle, posting a new one")
		err = s.create(ctx, passphrase)
	case s.cache.IsLocallyModified():
		s.logger.Debug(ctx, "cache locally modified, updating the latest bundle")
		err = s.update(ctx, passphrase, true)
	default:
		s.logger.Debug(ctx, "skipping session keys update, no local modifications")
		return nil
	}

	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return err
		}
		s.logger.Warn(ctx, "error saving session keys cache", "error", err)
		return nil
	}
	return s.persist(ctx)
}

func (s *SessionKeysService) create(ctx context.Context, passphrase []byte) error {
	data, err := s.seal(passphrase)
	if err != nil {
		return err
	}
	b, err := s.client.CreateSessionKeys(ctx, data)
	if err != nil {
		return fmt.Errorf("create session keys: %w", err)
	}
	s.cache.MarkSaved(b.ID, b.Modified)
	s.logger.Info(ctx, "new session keys bundle saved", "id", b.ID)
	return nil
}

func (s *SessionKeysService) update(ctx context.Context, passphrase []byte, restart bool) error {
	latest, ok := s.cache.LatestModifiedOrigin()
	if !ok {
		return s.create(ctx, passphrase)
	}

	data, err := s.seal(passphrase)
	if err != nil {
		return err
	}

	b, err := s.client.UpdateSessionKeys(ctx, latest.ID, latest.Modified, data)
	switch {
	case err == nil:
		s.cache.MarkSaved(b.ID, b.Modified)
		s.logger.Info(ctx, "session keys bundle updated", "id", b.ID)
		return nil
	case errors.Is(err, client.ErrConflict) || errors.Is(err, client.ErrNotFound):
		if !restart {
			return fmt.Errorf("update session keys %s: %w", latest.ID, err)
		}
		s.logger.Info(ctx, "session keys bundle changed on server, re-fetching", "id", latest.ID)
		if err := s.reconcile(ctx, passphrase); err != nil {
			return err
		}
		return s.update(ctx, passphrase, false)
	default:
		return fmt.Errorf("update session keys %s: %w", latest.ID, err)
	}
}

// reconcile merges the local cache with freshly fetched bundles. The local
// cache takes part as a bundle of its own that is not an origin.
func (s *SessionKeysService) reconcile(ctx context.Context, passphrase []byte) error {
	bundles, err := s.client.ListSessionKeys(ctx)
	if err != nil {
		return fmt.Errorf("re-fetch session keys: %w", err)
	}

	localID := uuid.New()
	local := sessionkeys.ToDecryptedBundle(s.cache.Snapshot().Keys, localID, s.now().UTC())

	merged := s.merger.Merge(append(s.decryptAll(ctx, passphrase, bundles), local))
	delete(merged.OriginMetadata, localID.String())
	s.cache.Replace(merged)
	return nil
}

func (s *SessionKeysService) seal(passphrase []byte) (string, error) {
	dto := s.processor.PrePush(sessionkeys.ToBundleDTO(s.cache.Snapshot().Keys))
	plain, err := json.Marshal(dto)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(plain)

	return cryptox.SealArmored(passphrase, plain)
}

// persist stores the cache encrypted with the master key. It is a no-op
// before Unlock.
func (s *SessionKeysService) persist(ctx context.Context) error {
	if s.masterKey == nil {
		s.logger.Debug(ctx, "not unlocked, local snapshot not written")
		return nil
	}

	snap := s.cache.Snapshot()
	ciphertext, nonce, err := cryptox.EncryptEntry(localSnapshot{
		Bundle: sessionkeys.ToBundleDTO(snap.Keys),
		Origin: snap.OriginMetadata,
	}, s.masterKey)
	if err != nil {
		return fmt.Errorf("encrypt local snapshot: %w", err)
	}

	raw, err := json.Marshal(sealedSnapshot{Nonce: nonce, Data: ciphertext})
	if err != nil {
		return err
	}
	return s.metadataRepo().Set(ctx, metadata.KeySessionKeysCache, raw)
}

// LoadLocal restores the cache from the local snapshot. It reports false
// when no snapshot exists.
func (s *SessionKeysService) LoadLocal(ctx context.Context) (bool, error) {
	if s.masterKey == nil {
		return false, common.ErrPassphraseNotInCache
	}

	raw, err := s.metadataRepo().Get(ctx, metadata.KeySessionKeysCache)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}

	var sealed sealedSnapshot
	if err := json.Unmarshal(raw, &sealed); err != nil {
		return false, fmt.Errorf("decode local snapshot: %w", err)
	}
	var snap localSnapshot
	if err := cryptox.DecryptEntry(sealed.Data, sealed.Nonce, s.masterKey, &snap); err != nil {
		return false, fmt.Errorf("decrypt local snapshot: %w", err)
	}

	merged := s.merger.Merge([]sessionkeys.DecryptedBundle{{ID: uuid.New(), Bundle: snap.Bundle}})
	merged.OriginMetadata = snap.Origin
	if merged.OriginMetadata == nil {
		merged.OriginMetadata = map[string]time.Time{}
	}
	s.cache.Load(merged)
	return true, nil
}
