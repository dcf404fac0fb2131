package model

import (
	"github.com/securenotes/secure-notes-service/pkg/timex"
)

const TableNameNote = "notes"

// Note mapped from table <notes>
// deleted_at 为 NULL 表示活跃，非 NULL 表示软删除；
// 物理删除（purge）之后记录不复存在。
type Note struct {
	ID             int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	Title          string      `gorm:"column:title;not null;index:idx_title" json:"title" form:"title"`
	Tags           string      `gorm:"column:tags" json:"tags" form:"tags"`
	CreatedBy      string      `gorm:"column:created_by;not null" json:"createdBy" form:"createdBy"`
	CreatedAt      timex.Time  `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	LastAccessedAt timex.Time  `gorm:"column:last_accessed_at;type:datetime;autoUpdateTime:false" json:"lastAccessedAt" form:"lastAccessedAt"`
	DeletedAt      *timex.Time `gorm:"column:deleted_at;type:datetime;default:NULL;index:idx_deleted_at" json:"deletedAt" form:"deletedAt"`
}

// TableName Note's table name
func (*Note) TableName() string {
	return TableNameNote
}
