// Command thresholdctl drives pkg/blsthreshold and pkg/ecdsathreshold
// end-to-end: it deals a committee, gathers partial signatures, combines
// them, and verifies the result, the way cmd/drand-cli exercises the
// teacher's own signing stack from the command line.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/nimbus-labs/threshold/internal/identity"
	"github.com/nimbus-labs/threshold/internal/log"
	"github.com/nimbus-labs/threshold/pkg/blsthreshold"
	"github.com/nimbus-labs/threshold/pkg/ecdsathreshold"
	"github.com/nimbus-labs/threshold/pkg/sharing"
)

var logger = log.New(nil, log.InfoLevel).Named("thresholdctl")

func main() {
	app := &cli.App{
		Name:  "thresholdctl",
		Usage: "deal and exercise (t,n) threshold signature committees",
		Commands: []*cli.Command{
			setupCommand(),
			blsSignCommand(),
			ecdsaSignCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Errorw("thresholdctl failed", "error", err)
		os.Exit(1)
	}
}

func setupCommand() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "write a committee configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scheme", Value: "bls", Usage: "bls or ecdsa"},
			&cli.IntFlag{Name: "t", Required: true, Usage: "signing threshold"},
			&cli.IntFlag{Name: "n", Required: true, Usage: "committee size"},
			&cli.StringFlag{Name: "out", Value: "committee.toml"},
		},
		Action: func(c *cli.Context) error {
			cfg := &CommitteeConfig{
				Scheme:    c.String("scheme"),
				Threshold: c.Int("t"),
				Parties:   c.Int("n"),
			}
			if cfg.Scheme != "bls" && cfg.Scheme != "ecdsa" {
				return fmt.Errorf("unknown scheme %q, want bls or ecdsa", cfg.Scheme)
			}
			if err := cfg.Save(c.String("out")); err != nil {
				return err
			}
			logger.Infow("wrote committee config", "path", c.String("out"), "scheme", cfg.Scheme, "t", cfg.Threshold, "n", cfg.Parties)
			return nil
		},
	}
}

func parseCommittee(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid committee member %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func blsSignCommand() *cli.Command {
	return &cli.Command{
		Name:  "bls-sign",
		Usage: "deal a BLS committee in-process and produce a threshold signature",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "committee.toml"},
			&cli.StringFlag{Name: "committee", Required: true, Usage: "comma-separated signer ids, e.g. 1,3,5"},
			&cli.StringFlag{Name: "message", Value: "Hello, BLS Threshold Signature!"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := LoadCommitteeConfig(c.String("config"))
			if err != nil {
				return err
			}
			committee, err := parseCommittee(c.String("committee"))
			if err != nil {
				return err
			}
			roundsAttempted.WithLabelValues("bls").Inc()

			ctx, shares, err := blsthreshold.Setup(cfg.Threshold, cfg.Parties, rand.Reader)
			if err != nil {
				return err
			}
			byID := make(map[int]sharing.Share, len(shares))
			for _, s := range shares {
				byID[int(s.X.Int64())] = s
				if err := ctx.VerifyShareConsistency(s); err != nil {
					return err
				}
			}

			msg := []byte(c.String("message"))
			var partials []*blsthreshold.PartialSignature
			var verifyErrs *multierror.Error
			for _, id := range committee {
				share, ok := byID[id]
				if !ok {
					verifyErrs = multierror.Append(verifyErrs, fmt.Errorf("signer %d not in committee", id))
					continue
				}
				ps, err := ctx.PartialSign(share, msg)
				if err != nil {
					verifyErrs = multierror.Append(verifyErrs, err)
					continue
				}
				start := time.Now()
				err = ctx.VerifyPartial(ps, msg)
				pairingCheckSeconds.Observe(time.Since(start).Seconds())
				if err != nil {
					verifyErrs = multierror.Append(verifyErrs, err)
					continue
				}
				partials = append(partials, ps)
				logger.Debugw("partial signature accepted", "signer", identity.Fingerprint([]byte(strconv.Itoa(id))))
			}
			if err := verifyErrs.ErrorOrNil(); err != nil {
				return err
			}

			sig, err := ctx.Combine(partials, msg)
			if err != nil {
				return err
			}
			if err := ctx.Verify(msg, sig); err != nil {
				return err
			}
			roundsSucceeded.WithLabelValues("bls").Inc()
			sigBytes, err := sig.MarshalBinary()
			if err != nil {
				return err
			}
			logger.Infow("BLS threshold signature verified", "committee", committee, "signature", fmt.Sprintf("%x", sigBytes))
			return nil
		},
	}
}

func ecdsaSignCommand() *cli.Command {
	return &cli.Command{
		Name:  "ecdsa-sign",
		Usage: "deal an ECDSA committee in-process and produce a threshold signature",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "committee.toml"},
			&cli.StringFlag{Name: "committee", Required: true, Usage: "comma-separated signer ids, e.g. 1,3,5"},
			&cli.StringFlag{Name: "message", Value: "Hello, Threshold Signature!"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := LoadCommitteeConfig(c.String("config"))
			if err != nil {
				return err
			}
			committee, err := parseCommittee(c.String("committee"))
			if err != nil {
				return err
			}
			roundsAttempted.WithLabelValues("ecdsa").Inc()

			ctx, shares, err := ecdsathreshold.Setup(cfg.Threshold, cfg.Parties, rand.Reader)
			if err != nil {
				return err
			}
			byID := make(map[int]sharing.Share, len(shares))
			for _, s := range shares {
				byID[int(s.X.Int64())] = s
			}

			msg := []byte(c.String("message"))
			round := ctx.BeginRound(rand.Reader)
			defer round.End()

			var partials []*ecdsathreshold.PartialSignature
			var signErrs *multierror.Error
			for _, id := range committee {
				share, ok := byID[id]
				if !ok {
					signErrs = multierror.Append(signErrs, fmt.Errorf("signer %d not in committee", id))
					continue
				}
				ps, err := round.PartialSign(share, msg)
				if err != nil {
					signErrs = multierror.Append(signErrs, err)
					continue
				}
				partials = append(partials, ps)
			}
			if err := signErrs.ErrorOrNil(); err != nil {
				return err
			}

			r, s, err := ecdsathreshold.Combine(ctx, partials)
			if err != nil {
				return err
			}
			if err := ctx.Verify(msg, r, s); err != nil {
				return err
			}
			roundsSucceeded.WithLabelValues("ecdsa").Inc()
			logger.Infow("ECDSA threshold signature verified", "committee", committee, "r", r.String(), "s", s.String())
			return nil
		},
	}
}
