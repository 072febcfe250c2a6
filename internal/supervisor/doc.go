// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package supervisor runs recipevault's long-lived services under suture v4.

# Tree

	recipevault
	├── maintenance-layer
	│   ├── cache-janitor   (only with an in-memory similarity LRU)
	│   └── library-stats
	└── api-layer
	    └── http-server

Each layer restarts its own children. A crashing janitor backs off inside
the maintenance layer while the API keeps serving.

# Usage

	logger := logging.NewSlogLogger(logging.WithComponent("supervisor"))
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

Supervisor events (restarts, backoff, stop timeouts) are logged through
sutureslog. The *slog.Logger it needs comes from logging.NewSlogLogger, so
the events share the zerolog output.

# Failure Handling

Failures decay over FailureDecay seconds. A layer that crosses
FailureThreshold sleeps for FailureBackoff before restarting anything.
Services still running after ShutdownTimeout show up in
UnstoppedServiceReport.
*/
package supervisor
