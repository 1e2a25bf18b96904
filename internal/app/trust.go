package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"dkp-bootstrap/internal/types"
)

// establishTrust imports and locally signs the repository master key.
// Trust failures never abort the run: pacman will refuse unsigned
// packages on its own, and the panel tells the user how to finish by
// hand.
func (s Service) establishTrust(ctx context.Context) types.KeyTrustRecord {
	record := types.KeyTrustRecord{
		KeyID:      masterKeyID,
		Keyservers: keyservers,
	}
	for _, server := range keyservers {
		if err := s.KeyTrust.ReceiveKey(ctx, masterKeyID, server); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("keyserver", server).Msg("key receive failed")
			continue
		}
		record.Imported = true
		record.ImportedFrom = server
		break
	}
	if !record.Imported {
		s.Notifier.Panel("repository key could not be imported", []string{
			"import and sign it manually with:",
			"  sudo pacman-key --recv " + masterKeyID,
			"  sudo pacman-key --lsign " + masterKeyID,
			"see " + wikiURL,
		})
		return record
	}
	if err := s.KeyTrust.SignKey(ctx, masterKeyID); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("local key signing failed")
		return record
	}
	record.LocallySigned = true
	log.Ctx(ctx).Debug().Str("keyserver", record.ImportedFrom).Msg("repository key trusted")
	return record
}
