package store

const createTableSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    anchor           TEXT NOT NULL,
    version          TEXT NOT NULL,
    table_length     INTEGER NOT NULL,
    structure_count  INTEGER NOT NULL,
    collected_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS structures (
    snapshot_id  INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
    seq          INTEGER NOT NULL,
    handle       INTEGER NOT NULL,
    type         INTEGER NOT NULL,
    name         TEXT NOT NULL,
    raw          BLOB NOT NULL,
    fields_json  TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (snapshot_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_structures_type ON structures(type);
CREATE INDEX IF NOT EXISTS idx_snapshots_collected_at ON snapshots(collected_at);
`
