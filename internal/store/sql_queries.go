package store

import (
	"time"

	"github.com/MKhiriev/memclip/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	tableDocuments = "documents"
	tablePeers     = "peers"
	tableBlobs     = "blobs"
	tableEvents    = "events"
)

var eventColumns = []string{"seq", "kind", "entry_key", "content_id", "size", "author", "peer_id", "created_at"}

func buildInsertDocumentQuery(b sq.StatementBuilderType, docID string, createdAt time.Time) (string, []any, error) {
	return b.Insert(tableDocuments).
		Columns("id", "created_at").
		Values(docID, createdAt).
		ToSql()
}

func buildDocumentExistsQuery(b sq.StatementBuilderType, docID string) (string, []any, error) {
	return b.Select("1").
		From(tableDocuments).
		Where(sq.Eq{"id": docID}).
		Limit(1).
		ToSql()
}

func buildSelectPeerStatusQuery(b sq.StatementBuilderType, docID, peerID string) (string, []any, error) {
	return b.Select("online").
		From(tablePeers).
		Where(sq.Eq{"doc_id": docID, "peer_id": peerID}).
		ToSql()
}

func buildInsertPeerQuery(b sq.StatementBuilderType, docID, peerID string, seen time.Time) (string, []any, error) {
	return b.Insert(tablePeers).
		Columns("doc_id", "peer_id", "online", "last_seen").
		Values(docID, peerID, true, seen).
		ToSql()
}

func buildUpdatePeerQuery(b sq.StatementBuilderType, docID, peerID string, online bool, seen *time.Time) (string, []any, error) {
	q := b.Update(tablePeers).Set("online", online)
	if seen != nil {
		q = q.Set("last_seen", *seen)
	}
	return q.Where(sq.Eq{"doc_id": docID, "peer_id": peerID}).ToSql()
}

func buildSelectPeersQuery(b sq.StatementBuilderType, docID string) (string, []any, error) {
	return b.Select("peer_id", "online", "last_seen").
		From(tablePeers).
		Where(sq.Eq{"doc_id": docID}).
		OrderBy("peer_id").
		ToSql()
}

func stalePeers(before time.Time) sq.And {
	return sq.And{
		sq.Eq{"online": true},
		sq.Lt{"last_seen": before},
	}
}

func buildSelectStalePeersQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Select("doc_id", "peer_id").
		From(tablePeers).
		Where(stalePeers(before)).
		OrderBy("doc_id", "peer_id").
		ToSql()
}

func buildExpirePeersQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Update(tablePeers).
		Set("online", false).
		Where(stalePeers(before)).
		ToSql()
}

func buildInsertBlobQuery(b sq.StatementBuilderType, id models.ContentID, data []byte, createdAt time.Time) (string, []any, error) {
	return b.Insert(tableBlobs).
		Columns("content_id", "data", "size", "created_at").
		Values(string(id), data, int64(len(data)), createdAt).
		Suffix("ON CONFLICT (content_id) DO NOTHING").
		ToSql()
}

func buildSelectBlobQuery(b sq.StatementBuilderType, id models.ContentID) (string, []any, error) {
	return b.Select("data").
		From(tableBlobs).
		Where(sq.Eq{"content_id": string(id)}).
		ToSql()
}

func buildBlobExistsQuery(b sq.StatementBuilderType, id models.ContentID) (string, []any, error) {
	return b.Select("1").
		From(tableBlobs).
		Where(sq.Eq{"content_id": string(id)}).
		Limit(1).
		ToSql()
}

func buildLatestEntryQuery(b sq.StatementBuilderType, docID, key string) (string, []any, error) {
	return b.Select(eventColumns...).
		From(tableEvents).
		Where(sq.Eq{"doc_id": docID, "kind": string(models.HubEventEntry), "entry_key": key}).
		OrderBy("seq DESC").
		Limit(1).
		ToSql()
}

func buildInsertEventQuery(b sq.StatementBuilderType, docID string, ev models.HubEvent) (string, []any, error) {
	var entry models.Entry
	if ev.Entry != nil {
		entry = *ev.Entry
	}

	return b.Insert(tableEvents).
		Columns("doc_id", "kind", "entry_key", "content_id", "size", "author", "peer_id", "created_at").
		Values(docID, string(ev.Kind), entry.Key, string(entry.ContentID), entry.Size, entry.Author, ev.PeerID, ev.CreatedAt).
		Suffix("RETURNING seq").
		ToSql()
}

func buildSelectEventsQuery(b sq.StatementBuilderType, docID string, after int64, limit uint64) (string, []any, error) {
	return b.Select(eventColumns...).
		From(tableEvents).
		Where(sq.And{
			sq.Eq{"doc_id": docID},
			sq.Gt{"seq": after},
		}).
		OrderBy("seq ASC").
		Limit(limit).
		ToSql()
}
