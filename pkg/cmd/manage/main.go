// Command manage runs one-shot maintenance tasks against the Grove database.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/grovesocial/grove/pkg/internal/checkers"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/security"
	"github.com/grovesocial/grove/pkg/internal/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const usage = `usage: manage <command> [flags]

commands:
  normalise_usernames
  import_proxy_blacklisted_domains -file <path>
  flush_proxy_blacklisted_domains
  add_proxy_whitelist_domain -domain <domain>
  process_post_hashtags
  process_post_comment_hashtags
  process_post_links
  update_hashtags_colors
  update_hashtags_luminance
  assign_language
  create_invite -username <creator> -nickname <nickname>
  worker_health_check
`

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when loading settings.")
	}

	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	}

	tokens := security.NewTokens(
		viper.GetString("security.token_secret"),
		viper.GetString("security.token_algorithm"),
		time.Duration(viper.GetInt("security.token_ttl"))*time.Second,
	)
	services.Checks = checkers.New(database.C, checkers.ConfigFromSettings(), tokens)

	var err error
	switch command {
	case "normalise_usernames":
		err = services.NormalizeUsernames()
	case "import_proxy_blacklisted_domains":
		flags := flag.NewFlagSet(command, flag.ExitOnError)
		file := flags.String("file", "", "path to a file with one domain per line")
		flags.Parse(os.Args[2:])
		if *file == "" {
			log.Fatal().Msg("The -file flag is required.")
		}
		err = services.ImportProxyBlacklistedDomains(*file)
	case "flush_proxy_blacklisted_domains":
		err = services.FlushProxyBlacklistedDomains()
	case "add_proxy_whitelist_domain":
		flags := flag.NewFlagSet(command, flag.ExitOnError)
		domain := flags.String("domain", "", "registrable domain to whitelist")
		flags.Parse(os.Args[2:])
		if *domain == "" {
			log.Fatal().Msg("The -domain flag is required.")
		}
		err = services.AddProxyWhitelistDomain(*domain)
	case "process_post_hashtags":
		err = services.ProcessAllPostHashtags()
	case "process_post_comment_hashtags":
		err = services.ProcessAllPostCommentHashtags()
	case "process_post_links":
		err = services.ProcessAllPostLinks()
	case "update_hashtags_colors":
		err = services.UpdateHashtagColors()
	case "update_hashtags_luminance":
		err = services.UpdateHashtagLuminance()
	case "assign_language":
		err = services.AssignMissingLanguages()
	case "create_invite":
		flags := flag.NewFlagSet(command, flag.ExitOnError)
		username := flags.String("username", "", "creator of the invite")
		nickname := flags.String("nickname", "", "nickname the invite is reserved for")
		flags.Parse(os.Args[2:])
		if *username == "" || *nickname == "" {
			log.Fatal().Msg("The -username and -nickname flags are required.")
		}
		user, lookupErr := services.GetUserWithUsername(database.C, *username)
		if lookupErr != nil {
			log.Fatal().Err(lookupErr).Msg("Unable to find the invite creator.")
		}
		_, err = services.CreateInvite(user, *nickname)
	case "worker_health_check":
		err = services.WorkerHealthCheck()
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("The management command failed.")
	}
	log.Info().Str("command", command).Msg("The management command finished.")
}
