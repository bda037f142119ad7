// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	settingsTable      = "vault_settings"
	subscriptionsTable = "subscriptions"
	namespacesTable    = "namespaces"
	recordsTable       = "records"
	eventsTable        = "events"

	settingsRowID = 1
)

func buildInitSettingsQuery(b sq.StatementBuilderType, owner []byte, fee int64) (string, []any, error) {
	return b.Insert(settingsTable).
		Columns("id", "owner", "pending_owner", "fee", "fee_pool").
		Values(settingsRowID, owner, nil, fee, 0).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
}

func buildSelectSettingsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("owner", "pending_owner", "fee", "fee_pool").
		From(settingsTable).
		Where(sq.Eq{"id": settingsRowID}).
		ToSql()
}

func buildUpdateSettingsQuery(b sq.StatementBuilderType, owner, pendingOwner []byte, fee, feePool int64) (string, []any, error) {
	return b.Update(settingsTable).
		Set("owner", owner).
		Set("pending_owner", pendingOwner).
		Set("fee", fee).
		Set("fee_pool", feePool).
		Where(sq.Eq{"id": settingsRowID}).
		ToSql()
}

func buildSelectSubscriptionQuery(b sq.StatementBuilderType, caller []byte) (string, []any, error) {
	return b.Select("expires_at", "has_used_trial").
		From(subscriptionsTable).
		Where(sq.Eq{"caller": caller}).
		ToSql()
}

func buildUpsertSubscriptionQuery(b sq.StatementBuilderType, caller []byte, expiresAt int64, hasUsedTrial bool) (string, []any, error) {
	return b.Insert(subscriptionsTable).
		Columns("caller", "expires_at", "has_used_trial").
		Values(caller, expiresAt, hasUsedTrial).
		Suffix("ON CONFLICT (caller) DO UPDATE SET expires_at = excluded.expires_at, has_used_trial = excluded.has_used_trial").
		ToSql()
}

func buildNextRecordSeqQuery(b sq.StatementBuilderType, caller []byte) (string, []any, error) {
	return b.Insert(namespacesTable).
		Columns("caller", "record_counter").
		Values(caller, 1).
		Suffix("ON CONFLICT (caller) DO UPDATE SET record_counter = " + namespacesTable + ".record_counter + 1 RETURNING record_counter").
		ToSql()
}

func buildRecordExistsQuery(b sq.StatementBuilderType, caller, id []byte) (string, []any, error) {
	return b.Select("1").
		From(recordsTable).
		Where(sq.Eq{"caller": caller, "id": id}).
		ToSql()
}

func buildInsertRecordQuery(b sq.StatementBuilderType, caller, id []byte, seq int64, name, description, value []byte, now int64) (string, []any, error) {
	return b.Insert(recordsTable).
		Columns("caller", "id", "seq", "name", "description", "value", "created_at", "updated_at").
		Values(caller, id, seq, name, description, value, now, now).
		ToSql()
}

func buildUpdateRecordQuery(b sq.StatementBuilderType, caller, id, name, description, value []byte, now int64) (string, []any, error) {
	return b.Update(recordsTable).
		Set("name", name).
		Set("description", description).
		Set("value", value).
		Set("updated_at", now).
		Where(sq.Eq{"caller": caller, "id": id}).
		ToSql()
}

func buildDeleteRecordQuery(b sq.StatementBuilderType, caller, id []byte) (string, []any, error) {
	return b.Delete(recordsTable).
		Where(sq.Eq{"caller": caller, "id": id}).
		ToSql()
}

func buildSelectRecordsPageQuery(b sq.StatementBuilderType, caller []byte, offset, limit uint64) (string, []any, error) {
	return b.Select("id", "name", "description", "value").
		From(recordsTable).
		Where(sq.Eq{"caller": caller}).
		OrderBy("seq ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

func buildInsertEventQuery(b sq.StatementBuilderType, kind string, actor []byte, details string, createdAt int64) (string, []any, error) {
	return b.Insert(eventsTable).
		Columns("kind", "actor", "details", "created_at").
		Values(kind, actor, details, createdAt).
		Suffix("RETURNING seq").
		ToSql()
}

func buildSelectEventsQuery(b sq.StatementBuilderType, fromSeq int64, limit uint64) (string, []any, error) {
	return b.Select("seq", "kind", "actor", "details", "created_at").
		From(eventsTable).
		Where(sq.GtOrEq{"seq": fromSeq}).
		OrderBy("seq ASC").
		Limit(limit).
		ToSql()
}
