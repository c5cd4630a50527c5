package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    name                    TEXT PRIMARY KEY,
    cash_on_hand            REAL NOT NULL,
    monthly_expenses        REAL NOT NULL,
    monthly_revenue         REAL NOT NULL,
    expense_growth_rate     REAL NOT NULL,
    revenue_growth_rate     REAL NOT NULL,
    net_revenue_retention   REAL,
    notes                   TEXT,
    created_at              TEXT NOT NULL,
    updated_at              TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS alerts (
    id              TEXT PRIMARY KEY,
    scenario        TEXT NOT NULL,
    type            TEXT NOT NULL,
    severity        TEXT NOT NULL,
    title           TEXT NOT NULL,
    description     TEXT,
    metadata        TEXT,
    created_at      TEXT NOT NULL,
    acknowledged    INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_alerts_scenario ON alerts(scenario);
CREATE INDEX IF NOT EXISTS idx_alerts_acked ON alerts(acknowledged);
`
