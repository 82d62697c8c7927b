// Package source reads the input documents of a run: the expansion catalog, the
// collection export and the xwing-data2 card data.
//
// Documents are addressed by slash-separated names relative to a root and can be
// served either from a local directory (Dir) or from an S3/MinIO bucket (Bucket).
// Any failure to open or decode a document is reported as a *LoadError, which is
// fatal for the run.
//
// # Usage
//
//	src, err := source.New(cfg.Sources, storageClient, cfg.Storage.Bucket)
//	err = source.Load(ctx, src, cfg.Sources.Expansions, func(r io.Reader) error {
//	    cat, err = catalog.Decode(r)
//	    return err
//	})
package source
