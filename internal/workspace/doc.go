// Package workspace persists named decimals and matrices in a SQLite
// database so that results of one gauss invocation can feed the next.
//
// Entries are stored in canonical text form (a plain decimal or the
// canonical matrix grammar) together with the locale they were entered in.
// Restoring an entry reproduces the exact value and its formatting locale.
//
//	store, err := workspace.Open(workspace.Config{Path: settings.Workspace.Path}, logger)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	m, _ := linalgx.Parse("1,2;3,4")
//	if _, err := store.Save(ctx, workspace.MatrixEntry("a", m)); err != nil {
//	    return err
//	}
//
// Saving an existing name replaces its content but keeps the entry ID and
// creation time. Missing names yield errors matching errors.ErrNotFound.
package workspace
