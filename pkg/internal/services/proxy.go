package services

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// ImportProxyBlacklistedDomains loads one domain per line from the given
// file, skipping blanks, comments, and rows already present.
func ImportProxyBlacklistedDomains(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open domain file: %v", err)
	}
	defer file.Close()

	var imported int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		domain := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if domain == "" || strings.HasPrefix(domain, "#") {
			continue
		}

		var count int64
		if err := database.C.Model(&models.ProxyBlacklistedDomain{}).
			Where("domain = ?", domain).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := database.C.Create(&models.ProxyBlacklistedDomain{Domain: domain}).Error; err != nil {
			return err
		}
		imported++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("unable to read domain file: %v", err)
	}

	log.Info().Int("imported", imported).Msg("Proxy blacklisted domains imported.")
	return nil
}

func FlushProxyBlacklistedDomains() error {
	tx := database.C.Unscoped().
		Where("1 = 1").
		Delete(&models.ProxyBlacklistedDomain{})
	if tx.Error != nil {
		return tx.Error
	}
	log.Info().Int64("affected", tx.RowsAffected).Msg("Proxy blacklisted domains flushed.")
	return nil
}

func AddProxyWhitelistDomain(domain string) error {
	return database.C.Create(&models.ProxyWhitelistDomain{
		Domain: strings.ToLower(strings.TrimSpace(domain)),
	}).Error
}
