// Package uucp reconciles a UUCP site's spool directory into a classified,
// in-memory queue.
//
// A spool holds two independently written file sets: control files (`C.`)
// describing a transfer and data files (`D.`) holding its payload. Files that
// share the suffix after the prefix (the qid) belong together.
//
// # Components
//
//   - Batch: the (control, data) path pair for one qid.
//   - Entity: the classified record per qid, one of Missing, Mail, News or Invalid.
//   - Queue: the qid to Entity map plus the control-file cache used by incremental refreshes.
//   - State: the health verdict computed by Queue.Check (Empty, Clean or Damaged).
//   - Site: one remote's spool directory, its validity and its Queue.
//
// # Collaborators
//
// The package does not walk directories itself. A Spool answers existence,
// listing and open calls (DirSpool for a local tree, storage.Spool for a
// mirror in object storage), and a Classifier reports whether a control file
// describes a mail or a news transfer.
//
// # Usage
//
//	site, err := uucp.NewSite(ctx, "/var/spool/uucp", "news-feed", uucp.DirSpool{})
//	if err != nil {
//	    return err
//	}
//	if err := site.Scan(ctx); err != nil {
//	    return err
//	}
//	fmt.Println(site.Queue().Check())
package uucp
