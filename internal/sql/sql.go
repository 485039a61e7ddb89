package sql

import "embed"

// Migrations holds the schema migrations, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS

//go:embed queries/register_batch.sql
var RegisterBatch string

//go:embed queries/update_batch_status.sql
var UpdateBatchStatus string

//go:embed queries/batch_exists.sql
var BatchExists string

//go:embed queries/delete_batches_for_file.sql
var DeleteBatchesForFile string
